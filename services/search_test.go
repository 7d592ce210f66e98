package services

import (
	"testing"

	"hotel/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeQuery(t *testing.T) {
	assert.Equal(t, "phong doi 2 nguoi", NormalizeQuery("  Phòng Đôi 2 Người "))
	assert.Equal(t, "suite cao cap", NormalizeQuery("Suite Cao Cấp"))
	assert.Equal(t, "", NormalizeQuery("   "))
}

func TestSimilarity(t *testing.T) {
	assert.Equal(t, 1.0, Similarity("phong don", "phong don"))
	assert.Equal(t, 1.0, Similarity("", ""))
	assert.Equal(t, 0.0, Similarity("abc", "xyz"))
	assert.Greater(t, Similarity("phong don", "phong doi"), 0.8)

	// Hai chuỗi khác hẳn nhau vẫn không ra điểm âm
	assert.GreaterOrEqual(t, Similarity("ho boi", "may lanh tivi wifi"), 0.0)
}

func TestExtractPeopleFromQuery(t *testing.T) {
	assert.Equal(t, 2, extractPeopleFromQuery("phong doi 2 nguoi"))
	assert.Equal(t, 10, extractPeopleFromQuery("phong cho 10nguoi"))
	assert.Equal(t, -1, extractPeopleFromQuery("phong doi gia re"))
}

func TestSearchRoomsRanksMatchingRoomFirst(t *testing.T) {
	rooms := []models.Room{
		{RoomID: 1, RoomName: "Phòng đơn tiêu chuẩn", Type: 0, People: 1},
		{RoomID: 2, RoomName: "Phòng đôi hướng biển", Type: 1, People: 2},
	}

	results := SearchRooms("phòng đôi 2 người", rooms)
	require.NotEmpty(t, results)

	assert.Equal(t, uint(2), results[0].Room.RoomID)
	// Khớp loại phòng và số người
	assert.GreaterOrEqual(t, results[0].Score, 35)
}
