package service

import (
	"fmt"
	"net/url"

	"github.com/skip2/go-qrcode"
)

type DefaultQRGenerator struct {
	BaseURL string
}

func (g DefaultQRGenerator) Generate(orderNumber string) ([]byte, error) {
	qrData := fmt.Sprintf("%s/receipt.html?order=%s", g.BaseURL, url.QueryEscape(orderNumber))
	return qrcode.Encode(qrData, qrcode.Medium, 256)
}
