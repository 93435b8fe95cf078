package utils

import (
	"bytes"
	"context"
	"html/template"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"safeindiatransport/models"
)

// Printed bilty copies, one sheet each.
var copyTitles = []string{"Consignor Copy", "Consignee Copy", "Driver Copy"}

// GenerateBiltyPDF renders the bilty template once per copy and prints the
// combined HTML to PDF through headless Chrome. Each copy stays whole on a
// page; a cut copy moves to the next page.
func GenerateBiltyPDF(ctx context.Context, bilty *models.Bilty) ([]byte, error) {
	formattedDate := "-"
	if bilty.Date > 0 {
		formattedDate = time.UnixMilli(bilty.Date).Format("02-Jan-2006")
	}

	tmpl, err := template.ParseFiles("templates/bilty_template.html")
	if err != nil {
		return nil, err
	}

	var fullHTML bytes.Buffer
	for _, title := range copyTitles {
		data := models.BiltyPDFData{
			Bilty:      bilty,
			Consignor:  bilty.Consignor,
			Consignee:  bilty.Consignee,
			Date:       formattedDate,
			TotalWords: NumberToCurrencyWords(bilty.TotalAmount),
			CopyTitle:  title,
		}

		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, data); err != nil {
			return nil, err
		}

		fullHTML.WriteString("<div class='bilty-copy'>")
		fullHTML.Write(buf.Bytes())
		fullHTML.WriteString("</div>")
	}

	finalHTML := `
		<!DOCTYPE html>
		<html>
		<head>
		<meta charset="UTF-8">
		<style>
		@page {
			size: A4;
			margin: 20px;
		}
		body {
			font-family: Arial, Helvetica, sans-serif;
			font-size: 12px;
			margin: 0;
			padding: 0;
		}
		.bilty-copy {
			page-break-inside: avoid;
			border: none;
		}
		</style>
		</head>
		<body>` + fullHTML.String() + `</body></html>`

	// Chrome needs a file URL to navigate to.
	tmpDir := os.TempDir()
	tmpHTML := filepath.Join(tmpDir, "bilty_"+time.Now().Format("20060102150405")+".html")
	if err := os.WriteFile(tmpHTML, []byte(finalHTML), 0644); err != nil {
		return nil, err
	}
	defer os.Remove(tmpHTML)

	chromeCtx, cancel := chromedp.NewContext(ctx)
	defer cancel()

	var pdfBuf []byte
	fileURL := "file://" + tmpHTML

	err = chromedp.Run(chromeCtx,
		chromedp.Navigate(fileURL),
		chromedp.Sleep(1*time.Second),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).  // A4 width
				WithPaperHeight(11.7). // A4 height
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, err
	}

	return pdfBuf, nil
}
