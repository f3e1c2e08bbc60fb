package documents

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"rebobinagem/internal/domain/entities"

	"github.com/go-pdf/fpdf"
)

const (
	margin       = 15.0
	headerHeight = 28.0
)

// header colour of the quote, also used for the items table head
var brand = [3]int{26, 54, 71}

// BudgetPDF writes the A4 quote document.
func BudgetPDF(w io.Writer, b entities.Budget, client entities.Client, shop Shop) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(true, 30)
	pdf.AddPage()

	pageW, pageH := pdf.GetPageSize()
	contentW := pageW - 2*margin

	// Header
	pdf.SetFillColor(brand[0], brand[1], brand[2])
	pdf.Rect(0, 0, pageW, headerHeight, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetXY(margin, 5)
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(contentW*0.7, 7, tr(shop.Name), "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(contentW*0.3, 7, "Data: "+b.Date.Format(dateLayout), "", 1, "R", false, 0, "")
	pdf.SetFont("Helvetica", "", 8)
	if shop.Phone != "" {
		pdf.CellFormat(contentW, 5, tr("Fone: "+shop.Phone), "", 1, "L", false, 0, "")
	}
	if shop.Address != "" {
		pdf.CellFormat(contentW, 5, tr(shop.Address), "", 1, "L", false, 0, "")
	}

	pdf.SetTextColor(0, 0, 0)
	pdf.SetY(headerHeight + 8)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(contentW*0.6, 6, tr(fmt.Sprintf("%s #%s", title(b.Status), b.ShortID())), "", 1, "L", false, 0, "")
	pdf.CellFormat(20, 6, "CLIENTE:", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(contentW-20, 6, tr(client.Name), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	// Motor
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(contentW, 6, "DADOS DO MOTOR", "", 1, "L", false, 0, "")
	fields := motorFields(b.Motor)
	labelW, valueW := 30.0, contentW/2-30
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetFillColor(245, 247, 250)
	if len(fields) == 0 {
		pdf.CellFormat(contentW, 6, "Sem dados", "1", 1, "L", false, 0, "")
	}
	for i, f := range fields {
		pdf.SetFont("Helvetica", "B", 8)
		pdf.CellFormat(labelW, 6, tr(f[0]), "1", 0, "L", true, 0, "")
		pdf.SetFont("Helvetica", "", 8)
		ln := 0
		if i%2 == 1 || i == len(fields)-1 {
			ln = 1
		}
		pdf.CellFormat(valueW, 6, tr(f[1]), "1", ln, "L", false, 0, "")
	}
	pdf.Ln(4)

	// Technical report
	if b.TechnicalReport != "" {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(contentW, 6, tr("LAUDO TÉCNICO"), "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		pdf.MultiCell(contentW, 4.5, tr(b.TechnicalReport), "", "L", false)
		pdf.Ln(4)
	}

	// Items
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(contentW, 6, tr("PEÇAS E SERVIÇOS"), "", 1, "L", false, 0, "")
	qtyW, priceW := 20.0, 30.0
	descW := contentW - qtyW - 2*priceW

	pdf.SetFillColor(brand[0], brand[1], brand[2])
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(descW, 7, tr("Descrição"), "", 0, "L", true, 0, "")
	pdf.CellFormat(qtyW, 7, "Qtd", "", 0, "C", true, 0, "")
	pdf.CellFormat(priceW, 7, "Valor Unit.", "", 0, "R", true, 0, "")
	pdf.CellFormat(priceW, 7, "Subtotal", "", 1, "R", true, 0, "")

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetFillColor(245, 247, 250)
	for i, it := range b.Items {
		fill := i%2 == 1
		pdf.CellFormat(descW, 6, tr(truncate(it.PartName, 60)), "", 0, "L", fill, 0, "")
		pdf.CellFormat(qtyW, 6, strconv.Itoa(it.Quantity), "", 0, "C", fill, 0, "")
		pdf.CellFormat(priceW, 6, "R$ "+it.UnitPrice.StringFixed(2), "", 0, "R", fill, 0, "")
		pdf.CellFormat(priceW, 6, "R$ "+it.Subtotal.StringFixed(2), "", 1, "R", fill, 0, "")
	}
	pdf.Ln(4)

	// Totals
	if b.DiscountPercent != nil {
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(contentW, 5, "Subtotal: R$ "+b.Subtotal.StringFixed(2), "", 1, "R", false, 0, "")
		pdf.SetTextColor(220, 38, 38)
		pdf.CellFormat(contentW, 5, fmt.Sprintf("Desconto (%s%%): - R$ %s", b.DiscountPercent.String(), b.DiscountValue.StringFixed(2)), "", 1, "R", false, 0, "")
	}
	pdf.SetTextColor(brand[0], brand[1], brand[2])
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(contentW, 10, "TOTAL: R$ "+b.Total.StringFixed(2), "", 1, "R", false, 0, "")

	// Signatures are pinned to the bottom of the last page
	pdf.SetAutoPageBreak(false, 0)
	sigY := pageH - 20
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "", 9)
	pdf.Line(margin, sigY, margin+75, sigY)
	pdf.Line(pageW-margin-75, sigY, pageW-margin, sigY)
	pdf.SetXY(margin, sigY+1)
	pdf.CellFormat(75, 5, tr("Assinatura do Técnico"), "", 0, "C", false, 0, "")
	pdf.SetXY(pageW-margin-75, sigY+1)
	pdf.CellFormat(75, 5, tr("Assinatura do Cliente"), "", 0, "C", false, 0, "")

	return pdf.Output(w)
}

// MotorLabelPDF writes the 50x30mm thermal label stuck on the motor.
func MotorLabelPDF(w io.Writer, b entities.Budget, client entities.Client, shop Shop) error {
	const labelW, labelH, m = 50.0, 30.0, 1.5

	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "L",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: labelH, Ht: labelW},
	})
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetMargins(m, m, m)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	pageW, pageH := pdf.GetPageSize()
	innerW := pageW - 2*m

	pdf.SetLineWidth(0.2)
	pdf.Rect(m, m, innerW, pageH-2*m, "D")

	pdf.SetXY(m, m+0.5)
	pdf.SetFont("Helvetica", "B", 6)
	pdf.CellFormat(innerW, 3, tr(strings.ToUpper(title(b.Status))), "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "B", 8)
	pdf.CellFormat(innerW, 4, tr(truncate(client.Name, 35)), "", 1, "C", false, 0, "")

	if phone := contactPhone(client); phone != "" {
		pdf.SetFont("Helvetica", "", 7)
		pdf.SetTextColor(60, 60, 60)
		pdf.CellFormat(innerW, 4, tr("Tel: "+truncate(phone, 20)), "", 1, "C", false, 0, "")
	}

	if name := motorName(b.Motor); name != "" {
		pdf.SetX(m + 2)
		pdf.SetFont("Helvetica", "", 6)
		pdf.SetTextColor(80, 80, 80)
		pdf.CellFormat(innerW-2, 3, "Motor:", "", 1, "L", false, 0, "")
		pdf.SetX(m + 2)
		pdf.SetFont("Helvetica", "B", 7)
		pdf.SetTextColor(0, 0, 0)
		pdf.CellFormat(innerW-2, 3.5, tr(truncate(name, 30)), "", 1, "L", false, 0, "")
	}

	pdf.SetXY(m, pageH-m-3)
	pdf.SetFont("Helvetica", "", 5)
	pdf.SetTextColor(100, 100, 100)
	pdf.CellFormat(innerW-1, 2.5, tr(shop.Name), "", 0, "L", false, 0, "")
	pdf.SetX(m)
	pdf.CellFormat(innerW-1, 2.5, "#"+b.ShortID(), "", 0, "R", false, 0, "")

	return pdf.Output(w)
}

// motorFields lists the non-empty motor attributes as label/value pairs.
func motorFields(m entities.Motor) [][2]string {
	all := [][2]string{
		{"Marca", m.Brand},
		{"Modelo", m.Model},
		{"Nº Série", m.SerialNumber},
		{"CV", m.CV},
		{"Tensão", m.Voltage},
		{"RPM", m.RPM},
		{"Tipo", m.Type},
		{"Espiras", m.Turns},
		{"Nº Fios", m.Wires},
		{"Ligação", m.Connection},
		{"Diâm. Ext.", m.OuterDiameter},
		{"Comp. Ext.", m.OuterLength},
	}
	out := make([][2]string, 0, len(all)+1)
	for _, f := range all {
		if f[1] != "" {
			out = append(out, f)
		}
	}
	if m.ID != "" {
		original := "Não"
		if m.Original {
			original = "Sim"
		}
		out = append(out, [2]string{"Original", original})
	}
	return out
}
