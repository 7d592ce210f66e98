package services

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"sync"

	"hotel/models"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
)

type ScoredRoom struct {
	Room  models.Room `json:"room"`
	Score int         `json:"score"`
}

// Hàm chuẩn hóa chuỗi
func NormalizeQuery(input string) string {
	input = strings.TrimSpace(input)
	input = strings.ToLower(unidecode.Unidecode(input))
	return input
}

// Tạo đối tượng closestmatch cho danh sách từ khóa
func createMatcher(keywords []string) *closestmatch.ClosestMatch {
	return closestmatch.New(keywords, []int{2, 3})
}

// Tính độ tương đồng giữa hai chuỗi, kết quả nằm trong khoảng 0..1
func Similarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptionsWithSub)
	maxLen := float64(len(a))
	if float64(len(b)) > maxLen {
		maxLen = float64(len(b))
	}

	if maxLen == 0 {
		return 1.0 // Nếu cả hai chuỗi đều rỗng, tương đồng là 100%
	}

	return 1.0 - float64(distance)/maxLen
}

func extractPeopleFromQuery(query string) int {
	// Bắt số trước từ "nguoi"
	re := regexp.MustCompile(`(\d+)\s*nguoi`)
	match := re.FindStringSubmatch(query)
	if len(match) < 2 {
		return -1
	}

	people, err := strconv.Atoi(match[1])
	if err != nil {
		return -1
	}
	return people
}

// Tách loại phòng và số người từ query
func parseRoomType(query string) (int, int) {
	singleKeywords := []string{"phòng đơn", "phong don", "single", "don"}
	doubleKeywords := []string{"phòng đôi", "phong doi", "double", "doi"}
	suiteKeywords := []string{"suite", "cao cấp", "cao cap", "vip"}

	normalizedQuery := NormalizeQuery(query)
	people := extractPeopleFromQuery(normalizedQuery)

	singleMatcher := createMatcher(singleKeywords)
	doubleMatcher := createMatcher(doubleKeywords)
	suiteMatcher := createMatcher(suiteKeywords)

	singleMatch := singleMatcher.Closest(normalizedQuery)
	doubleMatch := doubleMatcher.Closest(normalizedQuery)
	suiteMatch := suiteMatcher.Closest(normalizedQuery)

	if suiteMatch != "" && strings.Contains(normalizedQuery, suiteMatch) {
		return 2, people
	}
	if doubleMatch != "" && strings.Contains(normalizedQuery, doubleMatch) {
		return 1, people
	}
	if singleMatch != "" && strings.Contains(normalizedQuery, singleMatch) {
		return 0, people
	}

	return -1, people
}

// Tạo danh sách tên phòng duy nhất cho closestmatch
func prepareRoomNameList(rooms []models.Room) []string {
	uniqueValues := make(map[string]bool)

	for _, room := range rooms {
		if room.RoomName != "" {
			uniqueValues[NormalizeQuery(room.RoomName)] = true
		}
	}

	uniqueList := make([]string, 0, len(uniqueValues))
	for val := range uniqueValues {
		uniqueList = append(uniqueList, val)
	}
	return uniqueList
}

// Tính điểm phù hợp cho phòng
func ScoreRoom(query string, room models.Room, cmName *closestmatch.ClosestMatch) int {
	normalizedQuery := NormalizeQuery(query)
	roomType, people := parseRoomType(normalizedQuery)
	score := 0

	if roomType != -1 && uint(roomType) == room.Type {
		score += 20
	}
	if people != -1 && room.People >= people {
		score += 15
	}
	if cmName.Closest(normalizedQuery) == NormalizeQuery(room.RoomName) {
		score += 13
	}
	score += amenityScore(normalizedQuery, room.Amenities)

	return score
}

func amenityScore(query string, amenities []string) int {
	maxAmenityScore := 12
	score := 0

	for _, amenity := range amenities {
		normalized := NormalizeQuery(amenity)
		similarity := Similarity(query, normalized)
		if similarity > 0.7 || strings.Contains(query, normalized) {
			score += 4
			if score >= maxAmenityScore {
				break
			}
		}
	}
	return score
}

// SearchRooms chấm điểm song song và sắp xếp theo độ phù hợp giảm dần
func SearchRooms(query string, rooms []models.Room) []ScoredRoom {
	cmName := createMatcher(prepareRoomNameList(rooms))

	var scored []ScoredRoom
	scoreCh := make(chan ScoredRoom, len(rooms))
	var wg sync.WaitGroup

	for _, room := range rooms {
		wg.Add(1)
		go func(room models.Room) {
			defer wg.Done()
			score := ScoreRoom(query, room, cmName)
			if score > 0 {
				scoreCh <- ScoredRoom{Room: room, Score: score}
			}
		}(room)
	}

	go func() {
		wg.Wait()
		close(scoreCh)
	}()

	for sr := range scoreCh {
		scored = append(scored, sr)
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored
}
