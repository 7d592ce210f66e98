package dto

// ServiceResponse là DTO cho response của dịch vụ
type ServiceResponse struct {
	ID          uint   `json:"id"`
	ServiceCode string `json:"serviceCode"`
	Name        string `json:"name"`
	Price       int    `json:"price"`
	Status      int    `json:"status"`
}

// CreateServiceRequest là DTO cho request tạo dịch vụ
type CreateServiceRequest struct {
	ServiceCode string `json:"serviceCode" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Price       int    `json:"price" binding:"required"`
}

// UpdateServiceRequest là DTO cho request cập nhật dịch vụ
type UpdateServiceRequest struct {
	Name   string `json:"name"`
	Price  int    `json:"price"`
	Status *int   `json:"status"`
}

// AddServiceUsageRequest là DTO cho request ghi dịch vụ vào booking
type AddServiceUsageRequest struct {
	ServiceID uint `json:"serviceId" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required"`
}

// ServiceUsageResponse là DTO cho một dòng dịch vụ đã dùng
type ServiceUsageResponse struct {
	ID          uint    `json:"id"`
	ServiceID   uint    `json:"serviceId"`
	ServiceName string  `json:"serviceName"`
	Quantity    int     `json:"quantity"`
	LineTotal   float64 `json:"lineTotal"`
}
