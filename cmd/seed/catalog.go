package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/pos-api/internal/domain/entity"
)

// defaultCatalog se usa cuando no se pasa -catalog.
var defaultCatalog = []entity.Product{
	{Barcode: "7702001000011", Description: "Café molido 500g", PricePerUnit: decimal.RequireFromString("18500")},
	{Barcode: "7702001000028", Description: "Arroz 1kg", PricePerUnit: decimal.RequireFromString("4200")},
	{Barcode: "7702001000035", Description: "Aceite girasol 1L", PricePerUnit: decimal.RequireFromString("12900")},
	{Barcode: "7702001000042", Description: "Panela 500g", PricePerUnit: decimal.RequireFromString("3100")},
	{Barcode: "7702001000059", Description: "Leche entera 1L", PricePerUnit: decimal.RequireFromString("4800")},
	{Barcode: "7702001000066", Description: "Huevos x30", PricePerUnit: decimal.RequireFromString("16000")},
	{Barcode: "7702001000073", Description: "Chocolate de mesa", PricePerUnit: decimal.RequireFromString("7600")},
	{Barcode: "7702001000080", Description: "Azúcar 1kg", PricePerUnit: decimal.RequireFromString("4500")},
}

// parseCatalog lee un CSV "barcode;description;price" (con encabezado opcional).
// charset "latin1" decodifica exportaciones ISO-8859-1 de cajas registradoras antiguas.
func parseCatalog(r io.Reader, charset string) ([]entity.Product, error) {
	switch strings.ToLower(charset) {
	case "", "utf8", "utf-8":
	case "latin1", "iso-8859-1", "iso8859-1":
		r = transform.NewReader(r, charmap.ISO8859_1.NewDecoder())
	case "cp1252", "windows-1252":
		r = transform.NewReader(r, charmap.Windows1252.NewDecoder())
	default:
		return nil, fmt.Errorf("charset no soportado: %q", charset)
	}

	cr := csv.NewReader(r)
	cr.Comma = ';'
	cr.FieldsPerRecord = 3
	cr.TrimLeadingSpace = true

	var products []entity.Product
	seen := make(map[string]bool)
	for line := 1; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("catálogo línea %d: %w", line, err)
		}
		if line == 1 && strings.EqualFold(strings.TrimSpace(rec[0]), "barcode") {
			continue
		}
		barcode := strings.TrimSpace(rec[0])
		if barcode == "" {
			return nil, fmt.Errorf("catálogo línea %d: barcode vacío", line)
		}
		if seen[barcode] {
			return nil, fmt.Errorf("catálogo línea %d: barcode %s duplicado", line, barcode)
		}
		price, err := decimal.NewFromString(strings.ReplaceAll(strings.TrimSpace(rec[2]), ",", "."))
		if err != nil || price.IsNegative() {
			return nil, fmt.Errorf("catálogo línea %d: precio inválido %q", line, rec[2])
		}
		seen[barcode] = true
		products = append(products, entity.Product{
			Barcode:      barcode,
			Description:  strings.TrimSpace(rec[1]),
			PricePerUnit: price,
		})
	}
	if len(products) == 0 {
		return nil, fmt.Errorf("catálogo vacío")
	}
	return products, nil
}
