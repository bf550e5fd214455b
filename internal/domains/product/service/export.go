package service

import (
	"bytes"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"ralhum-backend/internal/access"
	"ralhum-backend/internal/domains/product"
)

var exportHeader = []string{
	"SKU", "Product Name", "Slug", "Price (USD)", "Stock", "Status", "Featured", "Updated At",
}

// ExportXLSX renders the full catalog as a spreadsheet for the back office.
func (s *productServiceImpl) ExportXLSX(ctx context.Context, actor access.Actor) ([]byte, error) {
	if err := access.Authorize(access.EntityProduct, access.OpRead, actor).Err(); err != nil {
		return nil, err
	}
	if !actor.Role.IsStaff() {
		return nil, access.Deny("catalog export requires a staff role").Err()
	}

	const pageSize = 500
	var all []product.Product
	for offset := 0; ; offset += pageSize {
		page, _, err := s.repository.GetAll(ctx, &product.ProductFilter{Limit: pageSize, Offset: offset})
		if err != nil {
			return nil, fmt.Errorf("export products: %w", err)
		}
		all = append(all, page...)
		if len(page) < pageSize {
			break
		}
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Catalog"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("export products: %w", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	for col, title := range exportHeader {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(sheet, cell, title); err != nil {
			return nil, fmt.Errorf("export products: %w", err)
		}
	}
	for i, p := range all {
		row := i + 2
		values := []interface{}{
			p.SKUCode, p.ProductName, p.Slug, p.ProductPrice.String(),
			p.StockQuantity, p.Status.String(), p.Featured,
			p.UpdatedAt.Format("2006-01-02 15:04:05"),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, fmt.Errorf("export products: %w", err)
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("export products: %w", err)
	}
	return buf.Bytes(), nil
}
