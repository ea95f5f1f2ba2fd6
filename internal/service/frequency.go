package service

import (
	"errors"
	"sort"
	"unicode/utf8"

	"char_frequency/internal/models"
)

// DefaultMaxLength 是輸入字串允許的最大字元數
const DefaultMaxLength = 7000

// ErrInputTooLong 表示輸入超過允許的最大長度
var ErrInputTooLong = errors.New("input exceeds maximum length")

// FrequencyService 計算字串中每個字元的出現次數。
// 字元以 Unicode code point（rune）為單位，長度也以 rune 計算。
type FrequencyService struct {
	maxLength int
}

// NewFrequencyService 創建一個新的 FrequencyService，maxLength 不大於 0 時使用預設值
func NewFrequencyService(maxLength int) *FrequencyService {
	if maxLength <= 0 {
		maxLength = DefaultMaxLength
	}
	return &FrequencyService{maxLength: maxLength}
}

// MaxLength 回傳允許的最大輸入長度
func (s *FrequencyService) MaxLength() int {
	return s.maxLength
}

// CalculateFrequency 回傳按出現次數遞減排序的字元統計。
// 次數相同時，依字元第一次出現的順序排列。
func (s *FrequencyService) CalculateFrequency(input string) (models.Frequencies, error) {
	if utf8.RuneCountInString(input) > s.maxLength {
		return nil, ErrInputTooLong
	}

	// 每次呼叫都建立自己的表，不與其他請求共享
	index := make(map[rune]int)
	result := models.Frequencies{}
	for _, ch := range input {
		if i, ok := index[ch]; ok {
			result[i].Count++
			continue
		}
		index[ch] = len(result)
		result = append(result, models.CharacterCount{Character: ch, Count: 1})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Count > result[j].Count
	})
	return result, nil
}
