package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/tavlit/mekomit"
	"github.com/tavlit/mekomit/core"
	"github.com/tavlit/mekomit/ingestion"
)

var seedFileName = flag.String("catalog", "", "JSON catalogue file to seed from instead of the built-in sample data")

var sampleItems = []*core.Item{
	{Name: "קפה נחמה", Description: "בית קפה שכונתי עם מאפים טריים", Location: "תל אביב", Types: core.Labels{"בתי קפה"}},
	{Name: "מסעדת הנמל", Description: "דגים ופירות ים מול הים", Location: "נמל תל אביב", Types: core.Labels{"מסעדות"}, Tags: core.Labels{"דגים"}},
	{Name: "מוזיאון ישראל", Description: "מוזיאון לאומנות וארכיאולוגיה", Location: "ירושלים", Types: core.Labels{"מוזיאונים"}, Tags: core.Labels{"תרבות"}},
	{Name: "שוק מחנה יהודה", Description: "שוק פתוח עם דוכני אוכל", Location: "ירושלים", Types: core.Labels{"שווקים"}},
	{Name: "גן החיות התנכי", Description: "גן חיות משפחתי", Location: "ירושלים", Types: core.Labels{"אטרקציות"}},
	{Name: "חוף הבונים", Description: "שמורת טבע חופית", Location: "חוף כרמל", Types: core.Labels{"חופים"}, Tags: core.Labels{"טבע"}},
	{Name: "המושבה הגרמנית", Description: "מתחם בילוי ומסעדות", Location: "חיפה", Types: core.Labels{"אטרקציות"}},
	{Name: "הגנים הבהאיים", Description: "גנים מדורגים על הכרמל", Location: "חיפה", Types: core.Labels{"אטרקציות"}, Tags: core.Labels{"גנים"}},
	{Name: "מצפה רמון", Description: "מצפה על המכתש הגדול", Location: "מצפה רמון", Types: core.Labels{"אטרקציות"}, Tags: core.Labels{"טבע"}},
	{Name: "שוק הפשפשים", Description: "שוק עתיקות ויד שנייה", Location: "יפו", Types: core.Labels{"שווקים"}},
	{Name: "פארק הירקון", Description: "פארק עירוני לאורך הנחל", Location: "תל אביב", Types: core.Labels{"פארקים"}},
	{Name: "מוזיאון המדע", Description: "מוזיאון אינטראקטיבי לילדים", Location: "חיפה", Types: core.Labels{"מוזיאונים"}},
	{Name: "חוף גורדון", Description: "חוף מוכרז עם טיילת", Location: "תל אביב", Types: core.Labels{"חופים"}},
	{Name: "יקב רמת הגולן", Description: "מרכז מבקרים וטעימות יין", Location: "קצרין", Types: core.Labels{"יקבים"}},
	{Name: "עיר דוד", Description: "אתר ארכיאולוגי", Location: "ירושלים", Types: core.Labels{"אטרקציות"}, Tags: core.Labels{"ארכיאולוגיה"}},
}

var sampleRegions = []*core.Region{
	{Name: "מרכז", Settlements: []string{"תל אביב", "רמת גן", "גבעתיים", "חולון", "בת ים", "יפו"}},
	{Name: "ירושלים והסביבה", Settlements: []string{"ירושלים", "מבשרת ציון", "מעלה אדומים"}},
	{Name: "צפון", Settlements: []string{"חיפה", "עכו", "נהריה", "קצרין", "קריית שמונה"}},
	{Name: "דרום", Settlements: []string{"באר שבע", "אשדוד", "אשקלון", "מצפה רמון", "אילת"}},
}

func main() {
	flag.Parse()

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})
	slog.SetDefault(slog.New(handler))

	db, err := mekomit.NewDatabase("./places_db")
	if err != nil {
		panic(err)
	}
	defer db.Close()

	ctx := context.Background()

	if *seedFileName != "" {
		f, err := os.Open(*seedFileName)
		if err != nil {
			panic(err)
		}
		defer f.Close()
		if err := db.Ingest(ctx, f); err != nil {
			panic(err)
		}
		return
	}

	pipeline, err := ingestion.NewPipeline(db.ItemRepository(), db.RegionRepository())
	if err != nil {
		panic(err)
	}
	defer pipeline.Release()

	if err := pipeline.Store(ctx, sampleItems, sampleRegions); err != nil {
		panic(err)
	}

	slog.Info("seeded sample catalogue", "items", len(sampleItems), "regions", len(sampleRegions))
}
