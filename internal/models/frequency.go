package models

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// CharacterCount 表示一個字元及其出現次數
type CharacterCount struct {
	Character rune `json:"character"`
	Count     int  `json:"count"`
}

// Frequencies 是按出現次數由高到低排列的字元統計結果
type Frequencies []CharacterCount

// Total 回傳所有字元出現次數的總和
func (f Frequencies) Total() int {
	total := 0
	for _, cc := range f {
		total += cc.Count
	}
	return total
}

// Get 回傳指定字元的出現次數，不存在時回傳 0
func (f Frequencies) Get(ch rune) int {
	for _, cc := range f {
		if cc.Character == ch {
			return cc.Count
		}
	}
	return 0
}

// MarshalJSON 將結果序列化為 JSON 物件，鍵的順序與結果順序一致
func (f Frequencies) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, cc := range f {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(string(cc.Character))
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.WriteString(strconv.Itoa(cc.Count))
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
