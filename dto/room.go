package dto

import "time"

// RoomResponse là DTO cho response của phòng
type RoomResponse struct {
	ID          uint                `json:"id"`
	RoomCode    string              `json:"roomCode"`
	RoomName    string              `json:"roomName"`
	Type        uint                `json:"type"`
	NumBed      int                 `json:"numBed"`
	NumTolet    int                 `json:"numTolet"`
	Acreage     int                 `json:"acreage"`
	Price       int                 `json:"price"`
	People      int                 `json:"people"`
	Description string              `json:"description"`
	Status      int                 `json:"status"`
	Amenities   []string            `json:"amenities"`
	CreatedAt   time.Time           `json:"createdAt"`
	UpdatedAt   time.Time           `json:"updatedAt"`
	Promotions  []PromotionResponse `json:"promotions,omitempty"`
}

// CreateRoomRequest là DTO cho request tạo phòng
type CreateRoomRequest struct {
	RoomCode    string   `json:"roomCode" binding:"required"`
	RoomName    string   `json:"roomName" binding:"required"`
	Type        uint     `json:"type"`
	NumBed      int      `json:"numBed"`
	NumTolet    int      `json:"numTolet"`
	Acreage     int      `json:"acreage"`
	Price       int      `json:"price" binding:"required"`
	People      int      `json:"people"`
	Description string   `json:"description"`
	Amenities   []string `json:"amenities"`
}

// UpdateRoomRequest là DTO cho request cập nhật phòng
type UpdateRoomRequest struct {
	RoomName    string   `json:"roomName"`
	Type        uint     `json:"type"`
	NumBed      int      `json:"numBed"`
	NumTolet    int      `json:"numTolet"`
	Acreage     int      `json:"acreage"`
	Price       int      `json:"price"`
	People      int      `json:"people"`
	Description string   `json:"description"`
	Amenities   []string `json:"amenities"`
}

// UpdateRoomStatusRequest là DTO cho request cập nhật trạng thái phòng
type UpdateRoomStatusRequest struct {
	Status int `json:"status" binding:"required"`
}

// ScoredRoomResponse là DTO cho kết quả tìm kiếm phòng theo độ phù hợp
type ScoredRoomResponse struct {
	Room  RoomResponse `json:"room"`
	Score int          `json:"score"`
}
