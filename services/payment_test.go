package services

import (
	"testing"
	"time"

	"hotel/constants"
	"hotel/errors"
	"hotel/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsPaymentSuccess(t *testing.T) {
	cases := []struct {
		status string
		want   bool
	}{
		{"Thành công", true},
		{"thành công", true},
		{"thanh cong", true},
		{"Thanh Cong", true},
		{"success", true},
		{"SUCCESS", true},
		{"Payment success", true},
		// Biến thể hỏng mã hóa trong dữ liệu cũ
		{"ThÃ nh cÃ´ng", true},
		{"Thất bại", false},
		{"failed", false},
		{"pending", false},
		{"", false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, IsPaymentSuccess(tc.status), "status: %q", tc.status)
	}
}

func TestSumSuccessfulPayments(t *testing.T) {
	invoice := &models.Invoice{
		Payments: []models.PaymentRecord{
			{Amount: 500000, Status: "Thành công"},
			{Amount: 200000, Status: "thanh cong"},
			{Amount: 999999, Status: "Thất bại"},
			{Amount: 100000, Status: "success"},
		},
	}

	assert.Equal(t, 800000.0, SumSuccessfulPayments(invoice))
}

func TestReconcilePaymentPartialThenFull(t *testing.T) {
	now := time.Date(2026, 3, 13, 14, 0, 0, 0, time.UTC)
	invoice := &models.Invoice{
		ID:          5,
		TotalAmount: 1000000,
		Status:      constants.InvoiceStatusUnpaid,
	}

	record, remaining, err := ReconcilePayment(invoice, constants.PaymentMethodCash, 400000, "", now)
	require.NoError(t, err)

	assert.Equal(t, uint(5), record.InvoiceID)
	assert.NotEmpty(t, record.PaymentCode)
	assert.Equal(t, constants.PaymentStatusSuccess, record.Status)
	assert.Equal(t, 600000.0, remaining)
	assert.Equal(t, 400000.0, invoice.PaidAmount)
	assert.Equal(t, constants.InvoiceStatusPartiallyPaid, invoice.Status)
	assert.Nil(t, invoice.PaymentDate)

	record, remaining, err = ReconcilePayment(invoice, constants.PaymentMethodTransfer, 600000, "", now)
	require.NoError(t, err)

	assert.Equal(t, 0.0, remaining)
	assert.Equal(t, 1000000.0, invoice.PaidAmount)
	assert.Equal(t, constants.InvoiceStatusPaid, invoice.Status)
	require.NotNil(t, invoice.PaymentDate)
	assert.Equal(t, now, *invoice.PaymentDate)
	assert.Len(t, invoice.Payments, 2)
	assert.Equal(t, record.PaymentCode, invoice.Payments[1].PaymentCode)
}

func TestReconcilePaymentSettlesExactRemaining(t *testing.T) {
	now := time.Now()
	invoice := &models.Invoice{
		TotalAmount: 2600000,
		Payments: []models.PaymentRecord{
			{Amount: 500000, Status: "Thành công"},
		},
	}

	// Trả vượt số còn lại 2.100.000 thì bị từ chối
	_, _, err := ReconcilePayment(invoice, constants.PaymentMethodTransfer, 2200000, "", now)
	assert.ErrorIs(t, err, errors.ErrOverPayment)

	_, remaining, err := ReconcilePayment(invoice, constants.PaymentMethodTransfer, 2100000, "", now)
	require.NoError(t, err)
	assert.Equal(t, 0.0, remaining)
	assert.Equal(t, constants.InvoiceStatusPaid, invoice.Status)
	require.NotNil(t, invoice.PaymentDate)
}

func TestReconcilePaymentErrors(t *testing.T) {
	now := time.Now()

	_, _, err := ReconcilePayment(nil, constants.PaymentMethodCash, 100000, "", now)
	assert.ErrorIs(t, err, errors.ErrInvoiceMissing)

	invoice := &models.Invoice{TotalAmount: 500000}

	_, _, err = ReconcilePayment(invoice, constants.PaymentMethodCash, 0, "", now)
	assert.ErrorIs(t, err, errors.ErrInvalidAmount)

	_, _, err = ReconcilePayment(invoice, constants.PaymentMethodCash, -100, "", now)
	assert.ErrorIs(t, err, errors.ErrInvalidAmount)

	_, _, err = ReconcilePayment(invoice, constants.PaymentMethodCash, 600000, "", now)
	assert.ErrorIs(t, err, errors.ErrOverPayment)

	// Hóa đơn đã đủ tiền thì không nhận thêm
	invoice.Payments = []models.PaymentRecord{{Amount: 500000, Status: "Thành công"}}
	_, _, err = ReconcilePayment(invoice, constants.PaymentMethodCash, 100000, "", now)
	assert.ErrorIs(t, err, errors.ErrAlreadySettled)
}

func TestReconcilePaymentCountsLegacyEncodings(t *testing.T) {
	now := time.Now()
	invoice := &models.Invoice{
		TotalAmount: 1000000,
		Payments: []models.PaymentRecord{
			// Bản ghi cũ với trạng thái hỏng mã hóa vẫn được tính là đã trả
			{Amount: 700000, Status: "ThÃ nh cÃ´ng"},
		},
	}

	_, _, err := ReconcilePayment(invoice, constants.PaymentMethodMomo, 500000, "", now)
	assert.ErrorIs(t, err, errors.ErrOverPayment)

	_, remaining, err := ReconcilePayment(invoice, constants.PaymentMethodMomo, 300000, "", now)
	require.NoError(t, err)
	assert.Equal(t, 0.0, remaining)
	assert.Equal(t, constants.InvoiceStatusPaid, invoice.Status)
}
