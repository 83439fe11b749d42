package composer

import (
	"fmt"
	"strings"
)

const (
	MsgCannotUnderstand = "❌ Could not understand question. Please try rephrasing."
	MsgSectorData       = "❌ Could not retrieve sector data. Please try again later."
	MsgProcessing       = "❌ Error processing question. Please try again."
)

func TickerNotFound(entity string) string {
	return fmt.Sprintf("❌ Could not find ticker for '%s'. Please try using the company's stock ticker symbol.", entity)
}

func DataUnavailable(ticker string) string {
	return fmt.Sprintf("❌ Could not retrieve data for %s. Please try again later.", ticker)
}

func UnsupportedSector(sector string, known []string) string {
	return fmt.Sprintf("❌ Sector '%s' is not supported. Try one of: %s", sector, strings.Join(known, ", "))
}

func SectorNotFound(sector string, known []string) string {
	return fmt.Sprintf("❌ Could not find stocks for the '%s' sector right now. Supported sectors: %s", sector, strings.Join(known, ", "))
}
