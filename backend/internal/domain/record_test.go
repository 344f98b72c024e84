package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func sampleRecord(url string) Record {
	return Record{
		Source: Pair{Label: "Ссылка на страницу", Value: url},
		Dates: [DateSlots]Pair{
			{Label: "Дата початку торгів:", Value: "01.11.2026"},
			{Label: "Дата завершення торгів:", Value: "15.11.2026"},
			{Label: "Початок прийому заявок:", Value: "20.10.2026"},
			{Label: "Кінець прийому заявок:", Value: "14.11.2026"},
		},
		Description:   Pair{Label: "Текст", Value: "Земельна ділянка"},
		StartPrice:    Pair{Label: "Стартова ціна:", Value: "125 000,00 грн"},
		PublicityDate: Pair{Label: "Дата публікації:", Value: "18.10.2026"},
		Placeholders:  DefaultPlaceholders(),
	}
}

func TestRecordPairsLayout(t *testing.T) {
	rec := sampleRecord("https://setam.net.ua/lot/1")
	pairs := rec.Pairs()
	require.Len(t, pairs, SchemaWidth)

	require.Equal(t, rec.Source, pairs[0])
	require.Equal(t, Sentinel("ХХХХХХХ"), pairs[1])
	require.Equal(t, rec.Dates[:], pairs[2:6])
	require.Equal(t, Sentinel("ХХХХХХХ"), pairs[6])
	require.Equal(t, Sentinel("11111111"), pairs[7])
	require.Equal(t, Sentinel("Київ"), pairs[8])
	require.Equal(t, Sentinel("Київ"), pairs[9])
	require.Equal(t, rec.Description, pairs[10])
	require.Equal(t, []Pair{Sentinel("ХХХХХХХ"), Sentinel("ХХХХХХХ"), Sentinel("ХХХХХХХ")}, pairs[11:14])
	require.Equal(t, rec.StartPrice, pairs[14])
	require.Equal(t, Sentinel("без ПДВ"), pairs[15])
	require.Equal(t, Sentinel("Гривня"), pairs[16])
	require.Equal(t, rec.PublicityDate, pairs[17])
}

func TestRecordLabelsStableAcrossListings(t *testing.T) {
	a := sampleRecord("https://setam.net.ua/lot/1")
	b := sampleRecord("https://setam.net.ua/lot/2")
	b.Description.Value = ""
	b.StartPrice.Value = "1,00 грн"

	require.Equal(t, a.Labels(), b.Labels())
	require.Len(t, b.Values(), SchemaWidth)
	require.Equal(t, "https://setam.net.ua/lot/2", b.Values()[0])
	require.Equal(t, "", b.Values()[10])
}

func TestZeroRecordKeepsWidth(t *testing.T) {
	require.Len(t, Record{}.Pairs(), SchemaWidth)
}
