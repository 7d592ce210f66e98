package controllers

import (
	"log"
	"net/url"
	"strconv"
	"strings"
	"time"

	"hotel/config"
	"hotel/dto"
	"hotel/models"
	"hotel/response"
	"hotel/services"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
)

var roomCacheKey = "rooms:all"

func toRoomResponse(room models.Room) dto.RoomResponse {
	promotions := make([]dto.PromotionResponse, 0, len(room.Promotions))
	for _, p := range room.Promotions {
		promotions = append(promotions, dto.PromotionResponse{
			ID:           p.ID,
			RoomID:       p.RoomID,
			Name:         p.Name,
			DiscountType: p.DiscountType,
			Value:        p.Value,
			FromDate:     p.FromDate,
			ToDate:       p.ToDate,
			Status:       p.Status,
		})
	}
	return dto.RoomResponse{
		ID:          room.RoomID,
		RoomCode:    room.RoomCode,
		RoomName:    room.RoomName,
		Type:        room.Type,
		NumBed:      room.NumBed,
		NumTolet:    room.NumTolet,
		Acreage:     room.Acreage,
		Price:       room.Price,
		People:      room.People,
		Description: room.Description,
		Status:      room.Status,
		Amenities:   room.Amenities,
		CreatedAt:   room.CreatedAt,
		UpdatedAt:   room.UpdatedAt,
		Promotions:  promotions,
	}
}

// loadAllRooms lấy danh sách phòng từ cache, nếu không có thì truy vấn DB
func loadAllRooms() ([]models.Room, error) {
	var allRooms []models.Room

	rdb, err := config.ConnectRedis()
	if err != nil {
		log.Printf("Không thể kết nối Redis: %v", err)
	}

	if rdb != nil {
		if err := services.GetFromRedis(config.Ctx, rdb, roomCacheKey, &allRooms); err == nil && len(allRooms) > 0 {
			return allRooms, nil
		}
	}

	if err := config.DB.Preload("Promotions").Find(&allRooms).Error; err != nil {
		return nil, err
	}

	if rdb != nil {
		if err := services.SetToRedis(config.Ctx, rdb, roomCacheKey, allRooms, 10*time.Minute); err != nil {
			log.Printf("Lỗi khi lưu danh sách phòng vào Redis: %v", err)
		}
	}

	return allRooms, nil
}

func invalidateRoomCache() {
	rdb, err := config.ConnectRedis()
	if err != nil {
		return
	}
	if err := services.DeleteFromRedis(config.Ctx, rdb, roomCacheKey); err != nil {
		log.Printf("Lỗi khi xóa cache phòng: %v", err)
	}
}

func isRoomMatch(room models.Room, typeFilter, statusFilter, nameFilter, numBedFilter, peopleFilter, priceFilter string) bool {
	if typeFilter != "" {
		parsedType, err := strconv.Atoi(typeFilter)
		if err == nil && room.Type != uint(parsedType) {
			return false
		}
	}
	if statusFilter != "" {
		parsedStatus, _ := strconv.Atoi(statusFilter)
		if room.Status != parsedStatus {
			return false
		}
	}
	if nameFilter != "" {
		decodedNameFilter, _ := url.QueryUnescape(nameFilter)
		if !strings.Contains(strings.ToLower(room.RoomName), strings.ToLower(decodedNameFilter)) {
			return false
		}
	}
	if numBedFilter != "" {
		numBed, _ := strconv.Atoi(numBedFilter)
		if room.NumBed != numBed {
			return false
		}
	}
	if peopleFilter != "" {
		people, _ := strconv.Atoi(peopleFilter)
		if room.People < people {
			return false
		}
	}
	if priceFilter != "" {
		maxPrice, err := strconv.Atoi(priceFilter)
		if err == nil && room.Price > maxPrice {
			return false
		}
	}
	return true
}

func GetAllRooms(c *gin.Context) {
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

	typeFilter := c.Query("type")
	statusFilter := c.Query("status")
	nameFilter := c.Query("name")
	numBedFilter := c.Query("numBed")
	peopleFilter := c.Query("people")
	priceFilter := c.Query("maxPrice")

	allRooms, err := loadAllRooms()
	if err != nil {
		response.ServerError(c)
		return
	}

	// Áp dụng filter trên dữ liệu từ cache
	filteredRooms := make([]models.Room, 0)
	for _, room := range allRooms {
		if isRoomMatch(room, typeFilter, statusFilter, nameFilter, numBedFilter, peopleFilter, priceFilter) {
			filteredRooms = append(filteredRooms, room)
		}
	}

	total := len(filteredRooms)

	// Pagination
	start := page * limit
	end := start + limit
	if start >= total {
		filteredRooms = []models.Room{}
	} else if end > total {
		filteredRooms = filteredRooms[start:]
	} else {
		filteredRooms = filteredRooms[start:end]
	}

	roomResponses := make([]dto.RoomResponse, 0)
	for _, room := range filteredRooms {
		roomResponses = append(roomResponses, toRoomResponse(room))
	}

	response.SuccessWithPagination(c, roomResponses, page, limit, total)
}

func GetRoomDetail(c *gin.Context) {
	roomID := c.Param("id")

	var room models.Room
	if err := config.DB.Preload("Promotions").First(&room, "room_id = ?", roomID).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, toRoomResponse(room))
}

func CreateRoom(c *gin.Context) {
	var request dto.CreateRoomRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	room := models.Room{
		RoomCode:    request.RoomCode,
		RoomName:    request.RoomName,
		Type:        request.Type,
		NumBed:      request.NumBed,
		NumTolet:    request.NumTolet,
		Acreage:     request.Acreage,
		Price:       request.Price,
		People:      request.People,
		Description: request.Description,
		Amenities:   pq.StringArray(request.Amenities),
	}

	if err := config.DB.Create(&room).Error; err != nil {
		response.BadRequest(c, "Không thể tạo phòng, mã phòng có thể đã tồn tại")
		return
	}

	invalidateRoomCache()
	response.Success(c, toRoomResponse(room))
}

func UpdateRoom(c *gin.Context) {
	roomID := c.Param("id")

	var room models.Room
	if err := config.DB.First(&room, "room_id = ?", roomID).Error; err != nil {
		response.NotFound(c)
		return
	}

	var request dto.UpdateRoomRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if request.RoomName != "" {
		room.RoomName = request.RoomName
	}
	if request.Type != 0 {
		room.Type = request.Type
	}
	if request.NumBed != 0 {
		room.NumBed = request.NumBed
	}
	if request.NumTolet != 0 {
		room.NumTolet = request.NumTolet
	}
	if request.Acreage != 0 {
		room.Acreage = request.Acreage
	}
	if request.Price != 0 {
		room.Price = request.Price
	}
	if request.People != 0 {
		room.People = request.People
	}
	if request.Description != "" {
		room.Description = request.Description
	}
	if request.Amenities != nil {
		room.Amenities = pq.StringArray(request.Amenities)
	}

	if err := config.DB.Save(&room).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateRoomCache()
	response.Success(c, toRoomResponse(room))
}

func ChangeRoomStatus(c *gin.Context) {
	roomID := c.Param("id")

	var room models.Room
	if err := config.DB.First(&room, "room_id = ?", roomID).Error; err != nil {
		response.NotFound(c)
		return
	}

	var request dto.UpdateRoomStatusRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	room.Status = request.Status
	if err := room.ValidateStatus(); err != nil {
		response.BadRequest(c, "Trạng thái phòng không hợp lệ")
		return
	}

	if err := config.DB.Model(&models.Room{}).Where("room_id = ?", room.RoomID).
		Update("status", room.Status).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateRoomCache()
	response.Success(c, gin.H{"id": room.RoomID, "status": room.Status})
}

// SearchRooms tìm phòng gần đúng theo từ khóa tiếng Việt
func SearchRooms(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		response.BadRequest(c, "Từ khóa tìm kiếm là bắt buộc")
		return
	}

	allRooms, err := loadAllRooms()
	if err != nil {
		response.ServerError(c)
		return
	}

	scored := services.SearchRooms(query, allRooms)

	results := make([]dto.ScoredRoomResponse, 0, len(scored))
	for _, sr := range scored {
		results = append(results, dto.ScoredRoomResponse{
			Room:  toRoomResponse(sr.Room),
			Score: sr.Score,
		})
	}

	response.Success(c, results)
}

// ToggleFavoriteRoom thêm/bỏ phòng yêu thích của user
func ToggleFavoriteRoom(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		response.Unauthorized(c)
		return
	}

	roomIDStr := c.Param("id")
	roomID, err := strconv.ParseInt(roomIDStr, 10, 64)
	if err != nil {
		response.BadRequest(c, "ID phòng không hợp lệ")
		return
	}

	var room models.Room
	if err := config.DB.First(&room, "room_id = ?", roomID).Error; err != nil {
		response.NotFound(c)
		return
	}

	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		response.NotFound(c)
		return
	}

	favorites := make(pq.Int64Array, 0, len(user.FavoriteRooms))
	removed := false
	for _, id := range user.FavoriteRooms {
		if id == roomID {
			removed = true
			continue
		}
		favorites = append(favorites, id)
	}
	if !removed {
		favorites = append(favorites, roomID)
	}

	if err := config.DB.Model(&models.User{}).Where("id = ?", user.ID).
		Update("favorite_rooms", favorites).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, gin.H{"favoriteRooms": favorites, "favorited": !removed})
}
