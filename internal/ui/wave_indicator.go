package ui

import (
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"

	"go-invaders/internal/config"
)

// WaveIndicator shows the wave number in roman numerals.
type WaveIndicator struct {
	X, Y             float32
	FontSize         float32
	Color            rl.Color
	OutlineColor     rl.Color
	OutlineThickness int32
}

func NewWaveIndicator(x, y, fontSize float32) *WaveIndicator {
	return &WaveIndicator{
		X:                x,
		Y:                y,
		FontSize:         fontSize,
		Color:            ToRL(config.ButtonColor),
		OutlineColor:     rl.White,
		OutlineThickness: 1,
	}
}

func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// Draw centers the numeral on X. Nothing is drawn before the first wave.
func (i *WaveIndicator) Draw(wave int, font rl.Font) {
	text := toRoman(wave)
	if text == "" {
		return
	}

	size := rl.MeasureTextEx(font, text, i.FontSize, 1)
	x := i.X - size.X/2

	for dy := -i.OutlineThickness; dy <= i.OutlineThickness; dy++ {
		for dx := -i.OutlineThickness; dx <= i.OutlineThickness; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			rl.DrawTextEx(font, text, rl.NewVector2(x+float32(dx), i.Y+float32(dy)), i.FontSize, 1, i.OutlineColor)
		}
	}
	rl.DrawTextEx(font, text, rl.NewVector2(x, i.Y), i.FontSize, 1, i.Color)
}
