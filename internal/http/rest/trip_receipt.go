package rest

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/phpdave11/gofpdf"
	"github.com/yatrasetgo/packyourbags/internal/model"
	"github.com/yatrasetgo/packyourbags/util"
	"github.com/yatrasetgo/packyourbags/util/tracing"
	"github.com/yatrasetgo/packyourbags/util/values"
)

// TripReceipt streams the booking receipt as a PDF, so it does not go
// through the JSON Handler adapter.
func (api *API) TripReceipt(w http.ResponseWriter, r *http.Request) {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	userID, err := util.GetUserIDFromContext(r.Context())
	if err != nil {
		resp := respondWithError(err, "user not authenticated", values.NotAuthorised, &tc)
		writeErrorResponse(w, err, resp.Status, resp.Message)
		return
	}

	id, err := util.StringToUUID(chi.URLParam(r, "id"))
	if err != nil {
		resp := respondWithError(err, "invalid ID format", values.BadRequestBody, &tc)
		writeErrorResponse(w, err, resp.Status, resp.Message)
		return
	}

	trip, err := api.GetTripByIDRepo(r.Context(), id, userID)
	if err != nil {
		resp := respondWithError(err, "trip not found", errorStatus(err), &tc)
		writeErrorResponse(w, err, resp.Status, resp.Message)
		return
	}

	quote := model.BookingTotal(trip.UnitPrice, trip.Travelers, api.Config.BookingFeeRate)

	doc, filename, err := buildReceiptPDF(trip, quote)
	if err != nil {
		resp := respondWithError(err, "failed to generate receipt", values.Error, &tc)
		writeErrorResponse(w, err, resp.Status, resp.Message)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(doc)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(doc)
}

func buildReceiptPDF(trip model.Trip, quote model.BookingQuote) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Booking Receipt", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "BOOKING RECEIPT")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Booking Ref : %s", strings.ToUpper(trip.ID.String()[:8])),
		fmt.Sprintf("Destination : %s", trip.DestinationName),
		fmt.Sprintf("Travel Date : %s", trip.TravelDate.Format("02 Jan 2006")),
		fmt.Sprintf("Travelers   : %d", trip.Travelers),
		fmt.Sprintf("Status      : %s", trip.Status),
		fmt.Sprintf("Booked On   : %s", trip.CreatedAt.Format("02 Jan 2006 15:04")),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Payment Summary:")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("%d x %s (per traveler)", trip.Travelers, formatRupees(trip.UnitPrice)))
	pdf.Ln(6)
	pdf.Cell(0, 6, "Subtotal      : "+formatRupees(quote.Subtotal))
	pdf.Ln(6)
	pdf.Cell(0, 6, "Taxes & Fees  : "+formatRupees(quote.Fee))
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Total: "+formatRupees(quote.Total))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Keep this receipt for your records. Present it when checking in for your trip.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("RECEIPT_%s.pdf", strings.ToUpper(trip.ID.String()[:8]))
	return buf.Bytes(), filename, nil
}

func formatRupees(v int) string {
	if v <= 0 {
		return "Rs. 0"
	}
	s := strconv.Itoa(v)
	var out []byte
	n := len(s)
	for i := 0; i < n; i++ {
		out = append(out, s[i])
		pos := n - i - 1
		if pos > 0 && pos%3 == 0 {
			out = append(out, ',')
		}
	}
	return "Rs. " + string(out)
}
