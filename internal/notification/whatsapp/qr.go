package whatsapp

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

// QRSize сторона PNG в пикселях
const QRSize = 256

// QRCode кодирует ссылку в PNG
func QRCode(link string) ([]byte, error) {
	png, err := qrcode.Encode(link, qrcode.Medium, QRSize)
	if err != nil {
		return nil, fmt.Errorf("encode qr code: %w", err)
	}
	return png, nil
}
