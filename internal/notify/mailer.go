// Package notify は貸与通知メールの送信を行う。
// 送信失敗は呼び出し元に報告するだけで、資産側の状態には影響しない。
package notify

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"mime/multipart"
	"net/smtp"
	"net/textproto"
	"strings"

	platformdb "greenfuel-backend/internal/platform/db"
)

// Sender は送信手段の差し替え口。本番は smtpSender、テストはフェイク。
type Sender interface {
	Send(to []string, msg []byte) error
}

type smtpSender struct {
	cfg platformdb.SMTPConfig
}

func (s *smtpSender) Send(to []string, msg []byte) error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	var auth smtp.Auth
	if s.cfg.Username != "" {
		auth = smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	}
	return smtp.SendMail(addr, auth, s.cfg.From, to, msg)
}

type Mailer struct {
	from   string
	sender Sender
}

func NewMailer(cfg platformdb.SMTPConfig) *Mailer {
	return &Mailer{from: cfg.From, sender: &smtpSender{cfg: cfg}}
}

func newMailerWithSender(from string, sender Sender) *Mailer {
	return &Mailer{from: from, sender: sender}
}

// Attachment はbase64で受け取った添付ファイル。
type Attachment struct {
	Filename string
	Base64   string
}

// SendMail は本文と任意の添付をMIMEメッセージに組んで送る。
func (m *Mailer) SendMail(to, subject, body string, att *Attachment) error {
	if strings.TrimSpace(to) == "" {
		return fmt.Errorf("recipient is required")
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	fmt.Fprintf(&buf, "From: %s\r\n", m.from)
	fmt.Fprintf(&buf, "To: %s\r\n", to)
	fmt.Fprintf(&buf, "Subject: %s\r\n", subject)
	fmt.Fprintf(&buf, "MIME-Version: 1.0\r\n")
	fmt.Fprintf(&buf, "Content-Type: multipart/mixed; boundary=%s\r\n\r\n", mw.Boundary())

	hdr := textproto.MIMEHeader{}
	hdr.Set("Content-Type", "text/plain; charset=utf-8")
	part, err := mw.CreatePart(hdr)
	if err != nil {
		return err
	}
	if _, err := part.Write([]byte(body)); err != nil {
		return err
	}

	if att != nil && att.Base64 != "" {
		raw, err := base64.StdEncoding.DecodeString(att.Base64)
		if err != nil {
			return fmt.Errorf("decode attachment: %w", err)
		}
		hdr := textproto.MIMEHeader{}
		hdr.Set("Content-Type", "application/octet-stream")
		hdr.Set("Content-Transfer-Encoding", "base64")
		hdr.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", att.Filename))
		part, err := mw.CreatePart(hdr)
		if err != nil {
			return err
		}
		enc := base64.StdEncoding.EncodeToString(raw)
		// 76桁折り返し (RFC 2045)
		for len(enc) > 76 {
			if _, err := fmt.Fprintf(part, "%s\r\n", enc[:76]); err != nil {
				return err
			}
			enc = enc[76:]
		}
		if _, err := fmt.Fprintf(part, "%s\r\n", enc); err != nil {
			return err
		}
	}

	if err := mw.Close(); err != nil {
		return err
	}
	return m.sender.Send([]string{to}, buf.Bytes())
}
