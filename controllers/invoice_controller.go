package controllers

import (
	stderrors "errors"
	"html/template"
	"log"
	"net/http"
	"strconv"
	"time"

	"hotel/config"
	"hotel/constants"
	"hotel/dto"
	"hotel/errors"
	"hotel/models"
	"hotel/response"
	"hotel/services"
	"hotel/services/notification"
	"hotel/utils"
	"hotel/validator"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"gorm.io/gorm"
)

var invoiceCacheKey = "invoices:all"

// InvoiceController xử lý API hóa đơn và thanh toán
type InvoiceController struct {
	db     *gorm.DB
	melody *melody.Melody
}

func NewInvoiceController(db *gorm.DB, m *melody.Melody) *InvoiceController {
	return &InvoiceController{db: db, melody: m}
}

func toInvoiceResponse(invoice models.Invoice, bookingCode string) dto.InvoiceResponse {
	payments := make([]dto.PaymentRecordResponse, 0, len(invoice.Payments))
	for _, p := range invoice.Payments {
		payments = append(payments, dto.PaymentRecordResponse{
			ID:          p.ID,
			PaymentCode: p.PaymentCode,
			Method:      p.Method,
			Amount:      p.Amount,
			Status:      p.Status,
			Note:        p.Note,
			CreatedAt:   p.CreatedAt.Format("02/01/2006 15:04"),
		})
	}

	resp := dto.InvoiceResponse{
		ID:              invoice.ID,
		InvoiceCode:     invoice.InvoiceCode,
		BookingID:       invoice.BookingID,
		BookingCode:     bookingCode,
		RoomSubtotal:    invoice.RoomSubtotal,
		ServiceSubtotal: invoice.ServiceSubtotal,
		Discount:        invoice.Discount,
		LateFee:         invoice.LateFee,
		TotalAmount:     invoice.TotalAmount,
		PaidAmount:      invoice.PaidAmount,
		RemainingAmount: invoice.RemainingAmount,
		Status:          invoice.Status,
		Note:            invoice.Note,
		CreatedAt:       invoice.CreatedAt.Format("02/01/2006 15:04"),
		UpdatedAt:       invoice.UpdatedAt.Format("02/01/2006 15:04"),
		Payments:        payments,
	}
	if invoice.PaymentDate != nil {
		formatted := invoice.PaymentDate.Format("02/01/2006 15:04")
		resp.PaymentDate = &formatted
	}
	return resp
}

func invalidateInvoiceCache() {
	rdb, err := config.ConnectRedis()
	if err != nil {
		return
	}
	if err := services.DeleteKeysByPattern(config.Ctx, rdb, "invoices:*"); err != nil {
		log.Printf("Lỗi khi xóa cache hóa đơn: %v", err)
	}
}

func (ctrl *InvoiceController) GetInvoices(c *gin.Context) {
	page := 0
	limit := 10
	if pageStr := c.Query("page"); pageStr != "" {
		if parsedPage, err := strconv.Atoi(pageStr); err == nil && parsedPage >= 0 {
			page = parsedPage
		}
	}
	if limitStr := c.Query("limit"); limitStr != "" {
		if parsedLimit, err := strconv.Atoi(limitStr); err == nil && parsedLimit > 0 {
			limit = parsedLimit
		}
	}

	statusFilter := c.Query("status")
	codeFilter := c.Query("invoiceCode")

	var allInvoices []models.Invoice

	rdb, err := config.ConnectRedis()
	if err == nil {
		if err := services.GetFromRedis(config.Ctx, rdb, invoiceCacheKey, &allInvoices); err != nil || len(allInvoices) == 0 {
			allInvoices = nil
		}
	}

	if allInvoices == nil {
		if err := ctrl.db.Preload("Payments").Order("created_at DESC").Find(&allInvoices).Error; err != nil {
			response.ServerError(c)
			return
		}
		if rdb != nil {
			if err := services.SetToRedis(config.Ctx, rdb, invoiceCacheKey, allInvoices, 5*time.Minute); err != nil {
				log.Printf("Lỗi khi lưu danh sách hóa đơn vào Redis: %v", err)
			}
		}
	}

	filtered := make([]models.Invoice, 0)
	for _, invoice := range allInvoices {
		if statusFilter != "" {
			status, _ := strconv.Atoi(statusFilter)
			if invoice.Status != status {
				continue
			}
		}
		if codeFilter != "" && invoice.InvoiceCode != codeFilter {
			continue
		}
		filtered = append(filtered, invoice)
	}

	total := len(filtered)
	start := page * limit
	end := start + limit
	if start >= total {
		filtered = []models.Invoice{}
	} else if end > total {
		filtered = filtered[start:]
	} else {
		filtered = filtered[start:end]
	}

	invoiceResponses := make([]dto.InvoiceResponse, 0)
	for _, invoice := range filtered {
		invoiceResponses = append(invoiceResponses, toInvoiceResponse(invoice, ""))
	}

	response.SuccessWithPagination(c, invoiceResponses, page, limit, total)
}

func (ctrl *InvoiceController) GetInvoiceDetail(c *gin.Context) {
	invoiceCode := c.Param("code")

	var invoice models.Invoice
	if err := ctrl.db.Preload("Payments").Where("invoice_code = ?", invoiceCode).First(&invoice).Error; err != nil {
		response.NotFound(c)
		return
	}

	var booking models.Booking
	bookingCode := ""
	if err := ctrl.db.First(&booking, invoice.BookingID).Error; err == nil {
		bookingCode = booking.BookingCode
	}

	response.Success(c, toInvoiceResponse(invoice, bookingCode))
}

// ApplyPayment ghi nhận một lần thanh toán cho hóa đơn
func (ctrl *InvoiceController) ApplyPayment(c *gin.Context) {
	invoiceCode := c.Param("code")

	var request dto.ApplyPaymentRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := validator.ValidateAmount(request.Amount); err != nil {
		response.BadRequest(c, "Số tiền thanh toán phải lớn hơn 0")
		return
	}

	switch request.Method {
	case constants.PaymentMethodCash, constants.PaymentMethodTransfer, constants.PaymentMethodMomo:
	default:
		response.BadRequest(c, "Phương thức thanh toán không hợp lệ")
		return
	}

	var invoice models.Invoice
	if err := ctrl.db.Preload("Payments").Where("invoice_code = ?", invoiceCode).First(&invoice).Error; err != nil {
		response.NotFound(c)
		return
	}

	record, remaining, err := services.ReconcilePayment(&invoice, request.Method, request.Amount, request.Note, time.Now())
	if err != nil {
		switch {
		case stderrors.Is(err, errors.ErrInvalidAmount):
			response.BadRequest(c, "Số tiền thanh toán không hợp lệ")
		case stderrors.Is(err, errors.ErrAlreadySettled):
			response.BadRequest(c, "Hóa đơn đã thanh toán đủ")
		case stderrors.Is(err, errors.ErrOverPayment):
			response.BadRequest(c, "Số tiền vượt quá số còn phải trả")
		default:
			response.ServerError(c)
		}
		return
	}

	if err := ctrl.db.Create(record).Error; err != nil {
		response.ServerError(c)
		return
	}

	updates := map[string]interface{}{
		"paid_amount":      invoice.PaidAmount,
		"remaining_amount": invoice.RemainingAmount,
		"status":           invoice.Status,
	}
	if invoice.PaymentDate != nil {
		updates["payment_date"] = invoice.PaymentDate
	}
	if err := ctrl.db.Model(&models.Invoice{}).Where("id = ?", invoice.ID).Updates(updates).Error; err != nil {
		response.ServerError(c)
		return
	}

	// Hóa đơn thanh toán đủ mới tính vào doanh thu ngày
	if invoice.Status == constants.InvoiceStatusPaid {
		if err := services.RecordDailyRevenue(ctrl.db, invoice.TotalAmount); err != nil {
			utils.LogError("Lỗi ghi doanh thu cho hóa đơn %s: %v", invoice.InvoiceCode, err)
		}
	}

	if ctrl.melody != nil {
		builder := notification.NewPaymentMessageBuilder(invoice.InvoiceCode, record.Amount, remaining)
		svc := notification.NewMelodyService(ctrl.melody)
		if err := svc.SendMessage(builder.Build()); err != nil {
			utils.LogError("Broadcast thanh toán thất bại cho hóa đơn %s: %v", invoice.InvoiceCode, err)
		}
	}

	invalidateInvoiceCache()

	response.Success(c, dto.ApplyPaymentResponse{
		Payment: dto.PaymentRecordResponse{
			ID:          record.ID,
			PaymentCode: record.PaymentCode,
			Method:      record.Method,
			Amount:      record.Amount,
			Status:      record.Status,
			Note:        record.Note,
			CreatedAt:   record.CreatedAt.Format("02/01/2006 15:04"),
		},
		RemainingAmount: remaining,
		InvoiceStatus:   invoice.Status,
	})
}

var invoiceDocumentTemplate = template.Must(template.New("invoice").Parse(`<!DOCTYPE html>
<html>
<head>
	<meta charset="UTF-8">
	<title>Hóa đơn {{.InvoiceCode}}</title>
</head>
<body>
	<h2>HÓA ĐƠN {{.InvoiceCode}}</h2>
	<p>Mã đặt phòng: {{.BookingCode}}</p>
	<table border="1" cellpadding="6" cellspacing="0">
		<tr><td>Tiền phòng</td><td>{{.RoomSubtotal}} VND</td></tr>
		<tr><td>Tiền dịch vụ</td><td>{{.ServiceSubtotal}} VND</td></tr>
		<tr><td>Giảm giá</td><td>-{{.Discount}} VND</td></tr>
		<tr><td>Phí trả phòng trễ</td><td>{{.LateFee}} VND</td></tr>
		<tr><td><strong>Tổng cộng</strong></td><td><strong>{{.TotalAmount}} VND</strong></td></tr>
		<tr><td>Đã thanh toán</td><td>{{.PaidAmount}} VND</td></tr>
		<tr><td>Còn lại</td><td>{{.RemainingAmount}} VND</td></tr>
	</table>
	{{if .Note}}<p>Ghi chú: {{.Note}}</p>{{end}}
</body>
</html>`))

type invoiceDocumentData struct {
	InvoiceCode     string
	BookingCode     string
	RoomSubtotal    string
	ServiceSubtotal string
	Discount        string
	LateFee         string
	TotalAmount     string
	PaidAmount      string
	RemainingAmount string
	Note            string
}

// GetInvoiceDocument trả hóa đơn dạng HTML để in cho khách
func (ctrl *InvoiceController) GetInvoiceDocument(c *gin.Context) {
	invoiceCode := c.Param("code")

	var invoice models.Invoice
	if err := ctrl.db.Where("invoice_code = ?", invoiceCode).First(&invoice).Error; err != nil {
		response.NotFound(c)
		return
	}

	var booking models.Booking
	bookingCode := ""
	if err := ctrl.db.First(&booking, invoice.BookingID).Error; err == nil {
		bookingCode = booking.BookingCode
	}

	data := invoiceDocumentData{
		InvoiceCode:     invoice.InvoiceCode,
		BookingCode:     bookingCode,
		RoomSubtotal:    services.FormatCurrency(invoice.RoomSubtotal),
		ServiceSubtotal: services.FormatCurrency(invoice.ServiceSubtotal),
		Discount:        services.FormatCurrency(invoice.Discount),
		LateFee:         services.FormatCurrency(invoice.LateFee),
		TotalAmount:     services.FormatCurrency(invoice.TotalAmount),
		PaidAmount:      services.FormatCurrency(invoice.PaidAmount),
		RemainingAmount: services.FormatCurrency(invoice.RemainingAmount),
		Note:            invoice.Note,
	}

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := invoiceDocumentTemplate.Execute(c.Writer, data); err != nil {
		log.Printf("Lỗi render hóa đơn %s: %v", invoice.InvoiceCode, err)
	}
}
