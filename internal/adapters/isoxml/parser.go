// Package isoxml reads the XML tables published by the ISO 4217 maintenance agency.
package isoxml

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/SscSPs/iso4217/internal/apperrors"
	"github.com/SscSPs/iso4217/internal/core/domain"
)

const (
	publishedAttr       = "Pblshd"
	publishedLayout     = "2006-01-02"
	noUniversalCurrency = "No universal currency"
	notApplicable       = "N.A."
)

var errMissing = errors.New("missing required element")

// nameElement is CcyNm; funds carry an IsFund attribute.
type nameElement struct {
	Text   string  `xml:",chardata"`
	IsFund *string `xml:"IsFund,attr"`
}

type activeEntry struct {
	Country    *string      `xml:"CtryNm"`
	Name       *nameElement `xml:"CcyNm"`
	Code       *string      `xml:"Ccy"`
	Number     *string      `xml:"CcyNbr"`
	MinorUnits *string      `xml:"CcyMnrUnts"`
}

type historicEntry struct {
	Country   *string      `xml:"CtryNm"`
	Name      *nameElement `xml:"CcyNm"`
	Code      *string      `xml:"Ccy"`
	Number    *string      `xml:"CcyNbr"`
	Withdrawn *string      `xml:"WthdrwlDt"`
}

// decodeFunc turns one entry element into a row. keep is false for
// placeholder entries that do not describe a currency.
type decodeFunc func(dec *xml.Decoder, start *xml.StartElement, index int) (row domain.RawRow, keep bool, err error)

// Document is one parsed source list. Rows are decoded lazily on each
// iteration, so a Document can be ranged over any number of times.
type Document struct {
	list      domain.SourceList
	entryName string
	decode    decodeFunc
	published time.Time
	data      []byte
}

// OpenActiveList prepares list one (current currency & funds).
func OpenActiveList(data []byte) (*Document, error) {
	return open(domain.ActiveList, "CcyNtry", decodeActive, data)
}

// OpenHistoricList prepares list three (historic denominations).
func OpenHistoricList(data []byte) (*Document, error) {
	return open(domain.HistoricList, "HstrcCcyNtry", decodeHistoric, data)
}

func open(list domain.SourceList, entryName string, decode decodeFunc, data []byte) (*Document, error) {
	published, err := readPublished(data)
	if err != nil {
		return nil, &apperrors.ParseError{List: string(list), Entry: -1, Field: publishedAttr, Err: err}
	}
	return &Document{
		list:      list,
		entryName: entryName,
		decode:    decode,
		published: published,
		data:      data,
	}, nil
}

// List names the table the document was read from.
func (d *Document) List() domain.SourceList {
	return d.list
}

// Published is the publication date stated on the root element.
func (d *Document) Published() time.Time {
	return d.published
}

// Rows yields every currency entry in document order. Iteration stops
// at the first malformed entry, which is yielded as a *apperrors.ParseError.
func (d *Document) Rows() iter.Seq2[domain.RawRow, error] {
	return func(yield func(domain.RawRow, error) bool) {
		dec := xml.NewDecoder(bytes.NewReader(d.data))
		index := 0
		for {
			tok, err := dec.Token()
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				yield(domain.RawRow{}, &apperrors.ParseError{List: string(d.list), Entry: index, Err: err})
				return
			}

			start, ok := tok.(xml.StartElement)
			if !ok || start.Name.Local != d.entryName {
				continue
			}

			row, keep, err := d.decode(dec, &start, index)
			if err != nil {
				var perr *apperrors.ParseError
				if errors.As(err, &perr) {
					perr.List = string(d.list)
				}
				yield(domain.RawRow{}, err)
				return
			}
			if keep {
				row.List = d.list
				row.Entry = index
				if !yield(row, nil) {
					return
				}
			}
			index++
		}
	}
}

// Collect drains Rows into a slice.
func (d *Document) Collect() ([]domain.RawRow, error) {
	var rows []domain.RawRow
	for row, err := range d.Rows() {
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func readPublished(data []byte) (time.Time, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	for {
		tok, err := dec.Token()
		if err != nil {
			return time.Time{}, fmt.Errorf("no root element: %w", err)
		}
		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		for _, attr := range start.Attr {
			if attr.Name.Local == publishedAttr {
				return time.Parse(publishedLayout, strings.TrimSpace(attr.Value))
			}
		}
		return time.Time{}, errMissing
	}
}

func decodeActive(dec *xml.Decoder, start *xml.StartElement, index int) (domain.RawRow, bool, error) {
	var e activeEntry
	if err := dec.DecodeElement(&e, start); err != nil {
		return domain.RawRow{}, false, &apperrors.ParseError{Entry: index, Err: err}
	}
	if e.Name == nil {
		return domain.RawRow{}, false, &apperrors.ParseError{Entry: index, Field: "CcyNm", Err: errMissing}
	}
	if trimName(e.Name.Text) == noUniversalCurrency {
		return domain.RawRow{}, false, nil
	}

	code, err := requireText(e.Code, index, "", "Ccy")
	if err != nil {
		return domain.RawRow{}, false, err
	}
	entity, err := requireText(e.Country, index, code, "CtryNm")
	if err != nil {
		return domain.RawRow{}, false, err
	}
	numberText, err := requireText(e.Number, index, code, "CcyNbr")
	if err != nil {
		return domain.RawRow{}, false, err
	}
	number, err := parseNumber(numberText, index, code, "CcyNbr")
	if err != nil {
		return domain.RawRow{}, false, err
	}
	minorText, err := requireText(e.MinorUnits, index, code, "CcyMnrUnts")
	if err != nil {
		return domain.RawRow{}, false, err
	}

	row := domain.RawRow{
		Code:        code,
		NumericCode: &number,
		DisplayName: trimName(e.Name.Text),
		IsFund:      e.Name.IsFund != nil,
		EntityName:  entity,
	}
	if minorText != notApplicable {
		exp, err := parseNumber(minorText, index, code, "CcyMnrUnts")
		if err != nil {
			return domain.RawRow{}, false, err
		}
		row.SubunitExponent = &exp
	}
	return row, true, nil
}

func decodeHistoric(dec *xml.Decoder, start *xml.StartElement, index int) (domain.RawRow, bool, error) {
	var e historicEntry
	if err := dec.DecodeElement(&e, start); err != nil {
		return domain.RawRow{}, false, &apperrors.ParseError{Entry: index, Err: err}
	}

	code, err := requireText(e.Code, index, "", "Ccy")
	if err != nil {
		return domain.RawRow{}, false, err
	}
	if e.Name == nil {
		return domain.RawRow{}, false, &apperrors.ParseError{Entry: index, Code: code, Field: "CcyNm", Err: errMissing}
	}
	entity, err := requireText(e.Country, index, code, "CtryNm")
	if err != nil {
		return domain.RawRow{}, false, err
	}
	withdrawn, err := requireText(e.Withdrawn, index, code, "WthdrwlDt")
	if err != nil {
		return domain.RawRow{}, false, err
	}
	period, err := domain.ParseApproxTimeSpan(withdrawn)
	if err != nil {
		return domain.RawRow{}, false, &apperrors.ParseError{Entry: index, Code: code, Field: "WthdrwlDt", Err: err}
	}

	row := domain.RawRow{
		Code:             code,
		DisplayName:      trimName(e.Name.Text),
		IsFund:           e.Name.IsFund != nil,
		EntityName:       entity,
		WithdrawalPeriod: &period,
	}
	if e.Number != nil && strings.TrimSpace(*e.Number) != "" {
		number, err := parseNumber(*e.Number, index, code, "CcyNbr")
		if err != nil {
			return domain.RawRow{}, false, err
		}
		row.NumericCode = &number
	}
	return row, true, nil
}

// requireText returns the trimmed content of a mandatory element.
func requireText(v *string, index int, code, field string) (string, error) {
	if v == nil || strings.TrimSpace(*v) == "" {
		return "", &apperrors.ParseError{Entry: index, Code: code, Field: field, Err: errMissing}
	}
	return strings.TrimSpace(*v), nil
}

func parseNumber(text string, index int, code, field string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, &apperrors.ParseError{Entry: index, Code: code, Field: field, Err: err}
	}
	if n < 0 || n > 999 {
		return 0, &apperrors.ParseError{Entry: index, Code: code, Field: field, Err: fmt.Errorf("%d out of range", n)}
	}
	return n, nil
}

// trimName right-trims a display name; leading and internal spacing is kept.
func trimName(s string) string {
	return strings.TrimRightFunc(s, unicode.IsSpace)
}
