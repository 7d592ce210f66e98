package services

import (
	"strings"
	"time"

	"hotel/constants"
	"hotel/errors"
	"hotel/models"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"
)

// IsPaymentSuccess chuẩn hóa trạng thái thanh toán trước khi so sánh.
// Dữ liệu cũ chứa nhiều biến thể: "Thành công", "thanh cong", "success"
// và các chuỗi hỏng mã hóa kiểu "ThÃ nh cÃ´ng". Mọi chỗ đọc trạng thái
// thanh toán phải dùng hàm này, không so sánh chuỗi trực tiếp.
func IsPaymentSuccess(status string) bool {
	if status == "" {
		return false
	}

	folded := strings.ToLower(unidecode.Unidecode(norm.NFC.String(status)))
	for _, marker := range []string{"thanh cong", "success"} {
		if strings.Contains(folded, marker) {
			return true
		}
	}

	// Các biến thể hỏng mã hóa còn sót trong dữ liệu cũ
	raw := strings.ToLower(status)
	for _, marker := range []string{"thành", "thã nh", "thà nh"} {
		if strings.Contains(raw, marker) {
			return true
		}
	}
	return false
}

// SumSuccessfulPayments cộng các lần thanh toán thành công của hóa đơn
func SumSuccessfulPayments(invoice *models.Invoice) float64 {
	total := 0.0
	for _, p := range invoice.Payments {
		if IsPaymentSuccess(p.Status) {
			total += p.Amount
		}
	}
	return total
}

// ReconcilePayment áp một lần thanh toán mới vào hóa đơn: kiểm tra số tiền,
// thêm PaymentRecord và tính lại số đã trả / còn lại / trạng thái hóa đơn.
// Trả về bản ghi thanh toán vừa thêm và số tiền còn phải trả.
func ReconcilePayment(invoice *models.Invoice, method string, amount float64, note string, now time.Time) (*models.PaymentRecord, float64, error) {
	if invoice == nil {
		return nil, 0, errors.ErrInvoiceMissing
	}
	if amount <= 0 {
		return nil, 0, errors.ErrInvalidAmount
	}

	totalPaidBefore := SumSuccessfulPayments(invoice)
	remainingBefore := invoice.TotalAmount - totalPaidBefore
	if remainingBefore <= 0 {
		return nil, 0, errors.ErrAlreadySettled
	}
	if amount > remainingBefore {
		return nil, 0, errors.ErrOverPayment
	}

	record := models.PaymentRecord{
		InvoiceID:   invoice.ID,
		PaymentCode: uuid.NewString(),
		Method:      method,
		Amount:      amount,
		Status:      constants.PaymentStatusSuccess,
		Note:        note,
		CreatedAt:   now,
	}
	invoice.Payments = append(invoice.Payments, record)

	totalPaidAfter := totalPaidBefore + amount
	invoice.PaidAmount = totalPaidAfter
	invoice.RemainingAmount = invoice.TotalAmount - totalPaidAfter

	switch {
	case totalPaidAfter >= invoice.TotalAmount:
		invoice.Status = constants.InvoiceStatusPaid
		paymentDate := now
		invoice.PaymentDate = &paymentDate
	case totalPaidAfter > 0:
		invoice.Status = constants.InvoiceStatusPartiallyPaid
	default:
		invoice.Status = constants.InvoiceStatusUnpaid
	}

	return &invoice.Payments[len(invoice.Payments)-1], invoice.RemainingAmount, nil
}
