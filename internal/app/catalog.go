package app

import (
	"time"

	"github.com/klabast/wb-services/festival-agenda/internal/festival"
)

// CatalogYear is the edition year of the built-in catalog
const CatalogYear = 2025

// SampleFestivals returns the built-in festival catalog, deliberately not
// in name order so the agenda has something to sort.
func SampleFestivals() []festival.Festival {
	return []festival.Festival{
		festival.NewFestival("Viña Rock", date(time.April, 30), 3, festival.Rock, festival.Punk, festival.HipHop),
		festival.NewFestival("Arenal Sound", date(time.July, 30), 5, festival.Pop, festival.Indie, festival.Electronic),
		festival.NewFestival("Gazpacho", date(time.March, 14), 1, festival.Indie),
		festival.NewFestival("Primavera Sound", date(time.June, 4), 5, festival.Indie, festival.Pop, festival.Electronic),
		festival.NewFestival("Sónar", date(time.June, 12), 3, festival.Electronic, festival.Techno),
		festival.NewFestival("BBK Live", date(time.July, 10), 3, festival.Rock, festival.Indie),
		festival.NewFestival("Mad Cool", date(time.July, 10), 3, festival.Rock, festival.Pop),
		festival.NewFestival("FIB", date(time.July, 17), 4, festival.Indie, festival.Pop),
		festival.NewFestival("Resurrection Fest", date(time.June, 25), 4, festival.Metal, festival.Punk),
		festival.NewFestival("Rototom Sunsplash", date(time.August, 16), 7, festival.Reggae),
		festival.NewFestival("Jazzaldia", date(time.July, 23), 5, festival.Jazz, festival.Blues),
		festival.NewFestival("Sonorama Ribera", date(time.August, 6), 5, festival.Indie, festival.Rock),
		festival.NewFestival("Cala Mijas", date(time.October, 2), 3, festival.Indie, festival.Electronic),
		festival.NewFestival("Ortigueira", date(time.July, 10), 4, festival.Folk),
		festival.NewFestival("azkena Rock", date(time.June, 19), 3, festival.Rock, festival.Blues),
	}
}

func date(month time.Month, day int) time.Time {
	return time.Date(CatalogYear, month, day, 0, 0, 0, 0, time.UTC)
}
