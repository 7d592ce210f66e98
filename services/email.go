package services

import (
	"fmt"
	"net/smtp"

	"hotel/config"
)

func smtpConfig() (from string, password string, host string, port string) {
	from = config.GetEnv("SMTP_FROM")
	password = config.GetEnv("SMTP_PASSWORD")
	host = config.GetEnv("SMTP_HOST")
	port = config.GetEnv("SMTP_PORT")
	if host == "" {
		host = "smtp.gmail.com"
	}
	if port == "" {
		port = "587"
	}
	return
}

func sendHTMLEmail(email string, subject string, body string) error {
	from, password, host, port := smtpConfig()
	to := []string{email}

	msg := []byte("MIME-Version: 1.0\r\nContent-Type: text/html; charset=UTF-8\r\n" + subject + "\n" + body)

	auth := smtp.PlainAuth("", from, password, host)

	return smtp.SendMail(host+":"+port, auth, from, to, msg)
}

// SendBookingEmail gửi mail xác nhận đặt phòng
func SendBookingEmail(email string, bookingCode string, totalPrice float64, checkInDate string, checkOutDate string) error {
	subject := "Subject: Đặt phòng thành công\n"

	priceFormatted := FormatCurrency(totalPrice)

	body := fmt.Sprintf(`<!DOCTYPE html>
	<html>
	<head>
		<meta charset="UTF-8">
		<title>Đặt phòng thành công</title>
	</head>
	<body>
		<h2>Cảm ơn bạn đã đặt phòng!</h2>
		<p>Mã đặt phòng của bạn: <strong>%s</strong></p>
		<p>Ngày nhận phòng: <strong>%s</strong></p>
		<p>Ngày trả phòng: <strong>%s</strong></p>
		<p>Tổng tiền: <strong>%s VND</strong></p>
		<p>Vui lòng xuất trình mã đặt phòng khi nhận phòng.</p>
	</body>
	</html>`, bookingCode, checkInDate, checkOutDate, priceFormatted)

	return sendHTMLEmail(email, subject, body)
}

// SendCheckoutEmail gửi mail hóa đơn khi trả phòng
func SendCheckoutEmail(email string, invoiceCode string, totalAmount float64, lateFee float64) error {
	subject := "Subject: Hóa đơn trả phòng\n"

	body := fmt.Sprintf(`<!DOCTYPE html>
	<html>
	<head>
		<meta charset="UTF-8">
		<title>Hóa đơn trả phòng</title>
	</head>
	<body>
		<h2>Cảm ơn bạn đã sử dụng dịch vụ!</h2>
		<p>Mã hóa đơn: <strong>%s</strong></p>
		<p>Phí trả phòng trễ: <strong>%s VND</strong></p>
		<p>Tổng tiền: <strong>%s VND</strong></p>
	</body>
	</html>`, invoiceCode, FormatCurrency(lateFee), FormatCurrency(totalAmount))

	return sendHTMLEmail(email, subject, body)
}

// SendUserEmail gửi mail thông báo tài khoản mới
func SendUserEmail(email string, phone string, pass string) error {
	subject := "Subject: Bạn đã tạo tài khoản mới\n"

	body := fmt.Sprintf(`<!DOCTYPE html>
	<html>
	<head>
		<meta charset="UTF-8">
		<title>Tài khoản mới</title>
	</head>
	<body>
		<h2>Chào mừng bạn!</h2>
		<p>Email đăng nhập: <strong>%s</strong></p>
		<p>Số điện thoại: <strong>%s</strong></p>
		<p>Mật khẩu: <strong>%s</strong></p>
		<p>Vui lòng đổi mật khẩu sau khi đăng nhập lần đầu.</p>
	</body>
	</html>`, email, phone, pass)

	return sendHTMLEmail(email, subject, body)
}
