package config

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/smtp"
	"os"
	"path/filepath"
	"sync"

	"github.com/skip2/go-qrcode"

	"go.mau.fi/whatsmeow"
	"go.mau.fi/whatsmeow/store/sqlstore"
)

var (
	meowWhatsapp *whatsmeow.Client
	qrCodeSent   bool
	mu           sync.Mutex
)

func InitSender() (*whatsmeow.Client, smtp.Auth, *string, *string, *string, error) {
	// SMTP Emailer
	emailSender, err := getSender()
	if err != nil {
		return nil, nil, nil, nil, nil, err
	}

	emailPassword, err := getPassword()
	if err != nil {
		return nil, nil, nil, nil, nil, err
	}

	smtpHost, err := getHost()
	if err != nil {
		return nil, nil, nil, nil, nil, err
	}

	smtpPort, err := getSMTPPort()
	if err != nil {
		return nil, nil, nil, nil, nil, err
	}

	schoolPhone, err := getSchoolPhone()
	if err != nil {
		return nil, nil, nil, nil, nil, err
	}

	smtpAuth := smtp.PlainAuth("", *emailSender, *emailPassword, *smtpHost)

	smtpAddr := fmt.Sprintf("%s:%s", *smtpHost, *smtpPort)

	fmt.Println("SMTP initialized")

	//Meow
	dbms, err := getDBMS()
	if err != nil {
		return nil, nil, nil, nil, nil, err
	}

	user, err := getDBUser()
	if err != nil {
		return nil, nil, nil, nil, nil, err
	}

	pass, err := getDBPassword()
	if err != nil {
		return nil, nil, nil, nil, nil, err
	}

	dbname, err := getDBName()
	if err != nil {
		return nil, nil, nil, nil, nil, err
	}

	meowAddress := fmt.Sprintf("user=%s password=%s dbname=%s sslmode=disable", *user, *pass, *dbname)

	container, err := sqlstore.New(*dbms, meowAddress, nil)
	if err != nil {
		panic(err)
	}

	deviceStore, err := container.GetFirstDevice()
	if err != nil {
		panic(err)
	}
	mClient := whatsmeow.NewClient(deviceStore, nil)
	meowWhatsapp = mClient

	if meowWhatsapp.Store.ID == nil {
		qrChan, _ := meowWhatsapp.GetQRChannel(context.Background())
		err = meowWhatsapp.Connect()
		if err != nil {
			panic(err)
		}

		// Process QR code
		for evt := range qrChan {
			if evt.Event == "code" {
				mu.Lock()
				if !qrCodeSent {
					fmt.Println("")
					fmt.Println("IMPORTANT no WhatsApp session was found !!")
					fmt.Println("Need admin to scan the QR code for the server to run properly!")
					fmt.Println("Loading...")

					err := generateQRCode(evt.Code, "qrcode.png")
					if err != nil {
						panic(err)
					}

					err = SendQRtoEmail(smtpAddr, &smtpAuth, *emailSender, "qrcode.png")
					if err != nil {
						panic(err)
					}
					fmt.Printf("Image of QR Code is sent to %s, go ahead and scan them :)\n", *emailSender)
					fmt.Println("")

					qrCodeSent = true
				}
				mu.Unlock()
			} else {
				fmt.Println("Login event:", evt.Event)
			}
		}
	} else {
		err = meowWhatsapp.Connect()
		if err != nil {
			panic(err)
		}
		fmt.Println("WhatsMeow initialized")
	}

	return meowWhatsapp, smtpAuth, &smtpAddr, schoolPhone, emailSender, nil
}

func generateQRCode(code, filename string) error {
	return qrcode.WriteFile(code, qrcode.Medium, 512, filename)
}

func SendQRtoEmail(smtpAddr string, auth *smtp.Auth, recipient, qrPath string) error {
	imgBytes, err := os.ReadFile(qrPath)
	if err != nil {
		return fmt.Errorf("failed to read QR image: %w", err)
	}

	boundary := "hikmah-qr-boundary"
	filename := filepath.Base(qrPath)

	msg := "From: " + recipient + "\r\n" +
		"To: " + recipient + "\r\n" +
		"Subject: WhatsApp login QR code\r\n" +
		"MIME-Version: 1.0\r\n" +
		"Content-Type: multipart/mixed; boundary=" + boundary + "\r\n\r\n" +
		"--" + boundary + "\r\n" +
		"Content-Type: text/plain; charset=UTF-8\r\n\r\n" +
		"No WhatsApp session was found. Scan the attached QR code to link the server.\r\n\r\n" +
		"--" + boundary + "\r\n" +
		"Content-Type: image/png\r\n" +
		"Content-Transfer-Encoding: base64\r\n" +
		"Content-Disposition: attachment; filename=\"" + filename + "\"\r\n\r\n" +
		base64.StdEncoding.EncodeToString(imgBytes) + "\r\n" +
		"--" + boundary + "--"

	if err := smtp.SendMail(smtpAddr, *auth, recipient, []string{recipient}, []byte(msg)); err != nil {
		return fmt.Errorf("failed to email QR code: %w", err)
	}
	return nil
}

func getSender() (*string, error) {
	sender := os.Getenv("EMAIL_SENDER")
	if sender == "" {
		return nil, fmt.Errorf("email sender invalid, value : %s", sender)
	}
	return &sender, nil
}

func getHost() (*string, error) {
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		return nil, fmt.Errorf("smtp value invalid, value : %s", host)
	}
	return &host, nil
}

func getPassword() (*string, error) {
	pass := os.Getenv("EMAIL_SENDER_PASSWORD")
	if pass == "" {
		return nil, fmt.Errorf("email password invalid, value : %s", pass)
	}
	return &pass, nil
}

func getSchoolPhone() (*string, error) {
	phone := os.Getenv("SCHOOL_PHONE")
	if phone == "" {
		return nil, fmt.Errorf("school phone invalid, value : %s", phone)
	}
	return &phone, nil
}

func getSMTPPort() (*string, error) {
	port := os.Getenv("SMTP_PORT")
	if port == "" {
		return nil, fmt.Errorf("smtp port invalid, value : %s", port)
	}
	return &port, nil
}

func getDBMS() (*string, error) {
	dbms := os.Getenv("DBMS")
	if dbms == "" {
		return nil, fmt.Errorf("DBMS is missing, value: %s", dbms)
	}
	return &dbms, nil
}

func getDBUser() (*string, error) {
	v := os.Getenv("DB_USER")
	if v == "" {
		return nil, fmt.Errorf("DATABASE User is missing, value: %s", v)
	}
	return &v, nil
}

func getDBPassword() (*string, error) {
	v := os.Getenv("DB_PASSWORD")
	if v == "" {
		return nil, fmt.Errorf("DATABASE Password is missing, value: %s", v)
	}
	return &v, nil
}

func getDBName() (*string, error) {
	v := os.Getenv("DB_DATABASE")
	if v == "" {
		return nil, fmt.Errorf("DATABASE Name is missing, value: %s", v)
	}
	return &v, nil
}
