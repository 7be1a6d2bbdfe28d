package view

import (
	"testing"

	"honnef.co/go/funnel"
)

func TestLabels(t *testing.T) {
	g := referenceGraph()
	show := true
	g.Update(Patch{DisplayPercent: &show})

	want := []Label{
		{
			Title:          "Impressions",
			Value:          "12,500",
			Percentage:     100,
			ShowPercentage: true,
			Segments: []SegmentLabel{
				{"Direct", "16%"}, {"Social Media", "32%"}, {"Ads", "48%"}, {"Other", "4%"},
			},
		},
		{
			Title:          "Add To Cart",
			Value:          "6,300",
			Percentage:     50.4,
			ShowPercentage: true,
			Segments: []SegmentLabel{
				{"Direct", "47.6%"}, {"Social Media", "15.9%"}, {"Ads", "27%"}, {"Other", "9.5%"},
			},
		},
		{
			Title:          "Buy",
			Value:          "1,630",
			Percentage:     13,
			ShowPercentage: true,
			Segments: []SegmentLabel{
				{"Direct", "49.1%"}, {"Social Media", "18.4%"}, {"Ads", "8%"}, {"Other", "24.5%"},
			},
		},
	}
	diff(t, want, g.Labels())
	diff(t, "50.4%", g.Labels()[1].PercentageText())
}

func TestLabelsRaw(t *testing.T) {
	g := New(Options{
		Data:          referenceData,
		SubLabels:     []string{"Direct", "Social Media", "Ads", "Other"},
		SubLabelValue: Raw,
	})
	diff(t, []SegmentLabel{
		{"Direct", "3,000"}, {"Social Media", "1,000"}, {"Ads", "1,700"}, {"Other", "600"},
	}, g.Labels()[1].Segments)
}

func TestLabelsSimple(t *testing.T) {
	g := New(Options{
		Data:   funnel.Simple{12000, 5700, 360},
		Labels: []string{"Visitors"},
	})
	want := []Label{
		{Title: "Visitors", Value: "12,000", Percentage: 100},
		{Value: "5,700", Percentage: 47.5},
		{Value: "360", Percentage: 3},
	}
	diff(t, want, g.Labels())
}

func TestLabelsRagged(t *testing.T) {
	g := New(Options{
		Data:      funnel.Layered{{10}, {5, 5}},
		SubLabels: []string{"a", "b"},
	})
	diff(t, []SegmentLabel{{"a", "100%"}, {"b", "0%"}}, g.Labels()[0].Segments)
	diff(t, []SegmentLabel{{"a", "50%"}, {"b", "50%"}}, g.Labels()[1].Segments)
}

func TestLegendBackground(t *testing.T) {
	diff(t, "background-color: red", LegendBackground(funnel.Solid("red"), funnel.Horizontal))
	diff(t, "background-image: linear-gradient(to right, red, blue)", LegendBackground(funnel.Fill{"red", "blue"}, funnel.Horizontal))
	diff(t, "background-image: linear-gradient(red, blue)", LegendBackground(funnel.Fill{"red", "blue"}, funnel.Vertical))
}

func TestParseSubLabelValue(t *testing.T) {
	for in, want := range map[string]SubLabelValue{"": Percent, "percent": Percent, "RAW": Raw} {
		got, err := ParseSubLabelValue(in)
		if err != nil {
			t.Fatal(err)
		}
		diff(t, want, got)
	}
	if _, err := ParseSubLabelValue("fraction"); err == nil {
		t.Error("expected error for unknown sub label value")
	}
	var v SubLabelValue
	if err := v.UnmarshalText([]byte("raw")); err != nil {
		t.Fatal(err)
	}
	diff(t, Raw, v)
}
