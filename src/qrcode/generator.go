package qrcode

import (
	"github.com/skip2/go-qrcode"
)

const DefaultSize = 256

// GeneratePNG สร้าง QR Code ของลิงก์สาธารณะเป็น PNG
func GeneratePNG(data string, size int) ([]byte, error) {
	if size <= 0 {
		size = DefaultSize
	}
	return qrcode.Encode(data, qrcode.Medium, size)
}
