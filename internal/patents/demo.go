package patents

import "fmt"

// demoSeeds is the static seed set the fallback pool is synthesized from.
var demoSeeds = []PatentRecord{
	{
		PublicationNumber: "US12421136B1",
		KindCode:          "B1",
		Country:           "US",
		PublicationDate:   "2022-01-10",
		TitleOriginal:     "Solar desalination system",
		AbstractOriginal:  "A system for solar-driven desalination using integrated photothermal and membrane modules...",
	},
	{
		PublicationNumber: "WO2025167351A1",
		KindCode:          "A1",
		Country:           "WO",
		PublicationDate:   "2025-06-12",
		TitleOriginal:     "Solar desalination and purification apparatus",
		AbstractOriginal:  "An apparatus combining solar thermal collection with multi-effect evaporation for brine desalination...",
	},
	{
		PublicationNumber: "CN120398169A",
		KindCode:          "A",
		Country:           "CN",
		PublicationDate:   "2024-03-18",
		TitleOriginal:     "Photothermal solar desalination system",
		AbstractOriginal:  "The invention discloses a photothermal solar desalination system featuring improved heat recovery...",
	},
}

// DemoPool synthesizes a fallback result set of the requested size by
// cycling the seed set. Identifiers, title suffixes, and publication dates
// are derived purely from the index, so two invocations with the same total
// produce identical sequences.
func DemoPool(total int) []PatentRecord {
	if total <= 0 {
		return nil
	}
	pool := make([]PatentRecord, 0, total)
	for i := 0; i < total; i++ {
		rec := demoSeeds[i%len(demoSeeds)]
		rec.PublicationNumber = fmt.Sprintf("%s-D%d", rec.PublicationNumber, i+1)
		rec.TitleOriginal = fmt.Sprintf("%s (demo %d)", rec.TitleOriginal, i+1)
		rec.PublicationDate = spreadDate(rec.PublicationDate, i)
		rec.AbstractOriginal = Clip(rec.AbstractOriginal, AbstractClipDemo)
		rec.LinkToViewer = ViewerLink(rec.PublicationNumber)
		pool = append(pool, rec)
	}
	return pool
}

// spreadDate pushes each copy's seed date back by a fixed per-index step so
// the pool covers a range of dates instead of three repeated ones.
func spreadDate(seed string, index int) string {
	key, canonical := NormalizeDate(seed)
	if canonical == "" {
		return ""
	}
	return key.AddDate(0, 0, -17*index).Format("2006-01-02")
}
