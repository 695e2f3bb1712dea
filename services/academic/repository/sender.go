package repository

import (
	"context"
	"fmt"
	"net/smtp"
	"strconv"
	"strings"
	"time"

	"hikmah/domain"

	"go.mau.fi/whatsmeow"
	"go.mau.fi/whatsmeow/proto/waE2E"
	"go.mau.fi/whatsmeow/types"
	"gorm.io/gorm"
)

type senderRepository struct {
	db          *gorm.DB
	client      smtp.Auth
	emailSender string
	schoolPhone string
	smtpAddress string
	meowClient  *whatsmeow.Client
}

func NewSenderRepository(db *gorm.DB, client smtp.Auth, smtpAddress, schoolPhone, emailSender string, meow *whatsmeow.Client) domain.SenderRepo {
	return &senderRepository{
		db:          db,
		client:      client,
		emailSender: emailSender,
		schoolPhone: schoolPhone,
		smtpAddress: smtpAddress,
		meowClient:  meow,
	}
}

func (m *senderRepository) fetchGuardianContact(ctx context.Context, studentID int) (*domain.GuardianContact, error) {
	var student domain.Student
	err := m.db.WithContext(ctx).First(&student, studentID).Error
	if err != nil {
		return nil, translateDBError(err)
	}

	var guardian domain.Account
	err = m.db.WithContext(ctx).
		Where("account_id = ?", student.GuardianID).
		First(&guardian).Error
	if err != nil {
		return nil, translateDBError(err)
	}

	var link domain.GuardianLink
	relationship := ""
	err = m.db.WithContext(ctx).
		Where("account_id = ? AND student_id = ?", student.GuardianID, studentID).
		First(&link).Error
	if err == nil {
		relationship = strings.ToLower(link.Relationship)
	}

	return &domain.GuardianContact{
		StudentName:   student.FullName,
		GuardianName:  guardian.FullName,
		Telephone:     guardian.Telephone,
		Email:         guardian.Email,
		GuardianIsMan: relationship == "father" || relationship == "ayah",
	}, nil
}

func (m *senderRepository) SendAbsenceAlert(ctx context.Context, studentID int) error {
	contact, err := m.fetchGuardianContact(ctx, studentID)
	if err != nil {
		return err
	}

	subject, body, err := m.initAbsenceText(contact)
	if err != nil {
		return err
	}

	if contact.Email != nil && *contact.Email != "" {
		if err := m.sendEmail(contact, *subject, *body); err != nil {
			return fmt.Errorf("failed to send email to %s: %w", *contact.Email, err)
		}
	}

	if err := m.sendWA(ctx, contact, *body); err != nil {
		return fmt.Errorf("failed to send WhatsApp message to %s: %w", contact.Telephone, err)
	}

	return nil
}

func (m *senderRepository) SendCredentials(ctx context.Context, studentID int, creds *domain.VerifiedCredentials) error {
	contact, err := m.fetchGuardianContact(ctx, studentID)
	if err != nil {
		return err
	}

	salutation := "Ibu"
	if contact.GuardianIsMan {
		salutation = "Bapak"
	}

	subject := fmt.Sprintf("Akun santri untuk %s", creds.StudentName)
	body := fmt.Sprintf(`Layanan HIKMAH 🔔

Yth. %s %s,

Pendaftaran santri berikut telah diverifikasi:

Nama: %s.

Akun santri dapat digunakan dengan kredensial berikut:

Username: %s
Password: %s

Kami menyarankan untuk segera mengganti password setelah login pertama.

Jika %s memiliki pertanyaan atau membutuhkan bantuan lebih lanjut, jangan ragu untuk menghubungi kami di %s.

Terima kasih atas perhatian dan kerjasamanya.`,
		salutation, contact.GuardianName, creds.StudentName, creds.Username, creds.Password,
		strings.ToLower(salutation), m.schoolPhone)

	if contact.Email != nil && *contact.Email != "" {
		if err := m.sendEmail(contact, subject, body); err != nil {
			return fmt.Errorf("failed to send email to %s: %w", *contact.Email, err)
		}
	}

	if err := m.sendWA(ctx, contact, body); err != nil {
		return fmt.Errorf("failed to send WhatsApp message to %s: %w", contact.Telephone, err)
	}

	return nil
}

func (m *senderRepository) initAbsenceText(contact *domain.GuardianContact) (*string, *string, error) {
	tNow := time.Now()

	formattedDate := tNow.Format("02/01/2006")
	hourOnly := tNow.Format("15")
	hourAndMinute := tNow.Format("15:04")

	intHourOnly, err := strconv.Atoi(hourOnly)
	if err != nil {
		return nil, nil, err
	}

	isAM := "AM"
	if intHourOnly >= 12 {
		isAM = "PM"
	}

	subject := fmt.Sprintf("Pemberitahuan Ketidakhadiran untuk %s pada %s %s tanggal %s", contact.StudentName, hourAndMinute, isAM, formattedDate)

	salutation := "Ibu"
	pronoun := "ibu"
	if contact.GuardianIsMan {
		salutation = "Bapak"
		pronoun = "bapak"
	}

	body := fmt.Sprintf(`Layanan HIKMAH 🔔

Yth. %s %s,

Kami ingin memberitahukan bahwa anak %s,

Nama: %s.

tidak hadir tanpa keterangan pada tanggal %s pukul %s %s.

Kami belum menerima alasan ketidakhadiran tersebut. Kami mohon %s dapat memberikan konfirmasi atau informasi lebih lanjut mengenai kondisi anak %s.

Jika %s memiliki pertanyaan atau membutuhkan bantuan lebih lanjut, jangan ragu untuk menghubungi kami di %s.

Terima kasih atas perhatian dan kerjasamanya.`,
		salutation, contact.GuardianName, pronoun, contact.StudentName,
		formattedDate, hourAndMinute, isAM, pronoun, pronoun, pronoun, m.schoolPhone)

	return &subject, &body, nil
}

func (m *senderRepository) sendEmail(contact *domain.GuardianContact, subjectEmail string, body string) error {
	msg := "From: " + m.emailSender + "\r\n" +
		"To: " + *contact.Email + "\r\n" +
		"Subject: " + subjectEmail + "\r\n" +
		"MIME-Version: 1.0\r\n" +
		"Content-Type: text/plain; charset=UTF-8\r\n\r\n" +
		body

	err := smtp.SendMail(m.smtpAddress, m.client, m.emailSender, []string{*contact.Email}, []byte(msg))
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func (m *senderRepository) sendWA(ctx context.Context, contact *domain.GuardianContact, body string) error {
	if contact.Telephone == "" {
		return fmt.Errorf("guardian has no telephone number")
	}
	completeFormat := fmt.Sprintf("%s%s", "62", contact.Telephone[1:])

	jid := types.NewJID(completeFormat, types.DefaultUserServer)

	conversationMessage := &waE2E.Message{
		Conversation: &body,
	}

	_, err := m.meowClient.SendMessage(ctx, jid, conversationMessage)
	if err != nil {
		return err
	}
	return nil
}
