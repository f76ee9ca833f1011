package sheet

import (
	"reflect"
	"testing"
)

func TestParseCSV_HeaderOnly(t *testing.T) {
	recs, err := ParseCSV([]byte("Name,Value\n"))
	if err != nil {
		t.Fatalf("ParseCSV failed: %v", err)
	}
	if len(recs) != 0 {
		t.Fatalf("expected no records for header-only input, got %d", len(recs))
	}
}

func TestParseCSV_Empty(t *testing.T) {
	recs, err := ParseCSV(nil)
	if err != nil {
		t.Fatalf("ParseCSV failed: %v", err)
	}
	if len(recs) != 0 {
		t.Fatalf("expected no records for empty input, got %d", len(recs))
	}
}

func TestParseCSV_BasicRows(t *testing.T) {
	in := "Name,Value\nFoo,1\n,\n"
	recs, err := ParseCSV([]byte(in))
	if err != nil {
		t.Fatalf("ParseCSV failed: %v", err)
	}
	want := []Record{{"Name": "Foo", "Value": "1"}}
	if !reflect.DeepEqual(recs, want) {
		t.Fatalf("got %v, want %v", recs, want)
	}
}

func TestParseCSV_QuotedComma(t *testing.T) {
	recs, err := ParseCSV([]byte("Name,Value\n\"a,b\",1\n"))
	if err != nil {
		t.Fatalf("ParseCSV failed: %v", err)
	}
	if len(recs) != 1 || recs[0]["Name"] != "a,b" {
		t.Fatalf("expected quoted comma to stay one field, got %v", recs)
	}
}

func TestParseCSV_EscapedQuote(t *testing.T) {
	recs, err := ParseCSV([]byte("Name,Value\n\"he said \"\"hi\"\"\",1\n"))
	if err != nil {
		t.Fatalf("ParseCSV failed: %v", err)
	}
	if len(recs) != 1 || recs[0]["Name"] != `he said "hi"` {
		t.Fatalf("expected doubled quote to unescape, got %v", recs)
	}
}

func TestParseCSV_QuotedNewline(t *testing.T) {
	recs, err := ParseCSV([]byte("Name,Value\n\"line1\nline2\",1\n"))
	if err != nil {
		t.Fatalf("ParseCSV failed: %v", err)
	}
	if len(recs) != 1 || recs[0]["Name"] != "line1\nline2" {
		t.Fatalf("expected newline inside quotes to stay in field, got %v", recs)
	}
}

func TestParseCSV_BlankLinesIgnored(t *testing.T) {
	in := "Name,Value\r\n\r\nFoo,1\r\n   \r\nBar,2\r\n\r\n"
	recs, err := ParseCSV([]byte(in))
	if err != nil {
		t.Fatalf("ParseCSV failed: %v", err)
	}
	want := []Record{
		{"Name": "Foo", "Value": "1"},
		{"Name": "Bar", "Value": "2"},
	}
	if !reflect.DeepEqual(recs, want) {
		t.Fatalf("got %v, want %v", recs, want)
	}
}

func TestParseCSV_SparseValues(t *testing.T) {
	in := "Name,Value,Note\nFoo,,done\n"
	recs, err := ParseCSV([]byte(in))
	if err != nil {
		t.Fatalf("ParseCSV failed: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("expected 1 record, got %d", len(recs))
	}
	if _, ok := recs[0]["Value"]; ok {
		t.Fatalf("empty cell must not produce a key, got %v", recs[0])
	}
	if recs[0]["Name"] != "Foo" || recs[0]["Note"] != "done" {
		t.Fatalf("unexpected record %v", recs[0])
	}
}

func TestParseCSV_TrimsHeadersAndValues(t *testing.T) {
	in := " Name , Value \n  Foo  ,  1  \n"
	recs, err := ParseCSV([]byte(in))
	if err != nil {
		t.Fatalf("ParseCSV failed: %v", err)
	}
	want := []Record{{"Name": "Foo", "Value": "1"}}
	if !reflect.DeepEqual(recs, want) {
		t.Fatalf("got %v, want %v", recs, want)
	}
}

func TestParseCSV_RaggedRow(t *testing.T) {
	in := "Name,Value\nFoo,1,extra\nBar\n"
	recs, err := ParseCSV([]byte(in))
	if err != nil {
		t.Fatalf("ParseCSV failed: %v", err)
	}
	want := []Record{
		{"Name": "Foo", "Value": "1"},
		{"Name": "Bar"},
	}
	if !reflect.DeepEqual(recs, want) {
		t.Fatalf("got %v, want %v", recs, want)
	}
}

func TestParseCSV_NoEmptyValuesEver(t *testing.T) {
	in := "A,B,C\n1,,3\n,,\n\"\",x,\n"
	recs, err := ParseCSV([]byte(in))
	if err != nil {
		t.Fatalf("ParseCSV failed: %v", err)
	}
	for _, rec := range recs {
		for k, v := range rec {
			if v == "" {
				t.Fatalf("record %v contains empty value for key %q", rec, k)
			}
		}
	}
}
