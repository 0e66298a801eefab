package services_test

import (
	"context"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/iso4217/internal/adapters/isoxml"
	"github.com/SscSPs/iso4217/internal/apperrors"
	"github.com/SscSPs/iso4217/internal/core/domain"
	"github.com/SscSPs/iso4217/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type TableBuilderTestSuite struct {
	suite.Suite
	ds *domain.Dataset
}

func (suite *TableBuilderTestSuite) SetupSuite() {
	ds, err := services.BuildDataset(context.Background(), isoxml.DefaultSources())
	suite.Require().NoError(err)
	suite.ds = ds
}

func (suite *TableBuilderTestSuite) get(code string) domain.CurrencyRecord {
	rec, ok := suite.ds.Get(code)
	suite.Require().True(ok, code)
	return rec
}

func (suite *TableBuilderTestSuite) TestCounts() {
	suite.Equal(305, suite.ds.Len())
	suite.Equal(180, suite.ds.ActiveCount())
	suite.Len(suite.ds.Codes(), 305)
}

func (suite *TableBuilderTestSuite) TestPublishedIsLatestOfBothLists() {
	suite.Equal(time.Date(2024, 6, 25, 0, 0, 0, 0, time.UTC), suite.ds.Published())
	suite.Equal("0.6.240625", suite.ds.Info().Version)
}

func (suite *TableBuilderTestSuite) TestUAH() {
	uah := suite.get("UAH")
	suite.Equal("Hryvnia", uah.DisplayName)
	suite.Require().NotNil(uah.NumericCode)
	suite.Equal(980, *uah.NumericCode)
	suite.Equal([]string{"UKRAINE"}, uah.Entities)
	suite.Empty(uah.WithdrawalHistory)
	suite.False(uah.IsFund)
	suite.Require().NotNil(uah.SubunitExponent)
	suite.Equal(2, *uah.SubunitExponent)
}

func (suite *TableBuilderTestSuite) TestEUR() {
	eur := suite.get("EUR")
	suite.Equal("Euro", eur.DisplayName)
	suite.Equal(978, *eur.NumericCode)
	suite.Len(eur.Entities, 36)
	suite.Equal([]domain.Historic{
		{
			Entity:      "SERBIA AND MONTENEGRO",
			DisplayName: "Euro",
			Period:      domain.ApproxTimeSpan{End: domain.ApproxDate{Year: 2006, Month: 10}},
		},
	}, eur.WithdrawalHistory)
	suite.False(eur.IsFund)
	suite.Equal(2, *eur.SubunitExponent)
}

func (suite *TableBuilderTestSuite) TestRON() {
	ron := suite.get("RON")
	suite.Equal("Romanian Leu", ron.DisplayName)
	suite.Equal(946, *ron.NumericCode)
	suite.Equal([]string{"ROMANIA"}, ron.Entities)
	suite.Equal([]domain.Historic{
		{
			Entity:      "ROMANIA",
			DisplayName: "New Romanian Leu",
			Period:      domain.ApproxTimeSpan{End: domain.ApproxDate{Year: 2015, Month: 6}},
		},
	}, ron.WithdrawalHistory)
}

func (suite *TableBuilderTestSuite) TestTRYUsesCurrentEntry() {
	try := suite.get("TRY")
	suite.Equal("Turkish Lira", try.DisplayName)
	suite.Require().NotNil(try.SubunitExponent)
	suite.Equal(2, *try.SubunitExponent)
}

func (suite *TableBuilderTestSuite) TestBolivarSoberanoPair() {
	ved := suite.get("VED")
	ves := suite.get("VES")
	suite.NotEqual(ved.DisplayName, ves.DisplayName)
	suite.Equal("Bolívar Soberano (VED)", ved.DisplayName)
	suite.Equal("Bolívar Soberano (VES)", ves.DisplayName)
}

func (suite *TableBuilderTestSuite) TestHistoricNamesCarryWithdrawalYear() {
	suite.Equal("Afghani (2003)", suite.get("AFA").DisplayName)
	suite.Equal("Leone (2023)", suite.get("SLL").DisplayName)
	suite.Equal("Zimbabwe Dollar (2009)", suite.get("ZWR").DisplayName)
	suite.Equal("Afghani", suite.get("AFN").DisplayName)
}

func (suite *TableBuilderTestSuite) TestDisplayNamesAreUnique() {
	seen := make(map[string]string)
	for _, rec := range suite.ds.Records() {
		other, dup := seen[rec.DisplayName]
		suite.False(dup, "%s and %s share %q", rec.Code, other, rec.DisplayName)
		seen[rec.DisplayName] = rec.Code
	}
}

func (suite *TableBuilderTestSuite) TestSharedAndMissingNumbers() {
	for _, code := range []string{"XFO", "XRE", "XFU"} {
		rec := suite.get(code)
		suite.Nil(rec.NumericCode, code)
		suite.True(rec.IsFund, code)
		suite.False(rec.IsActive(), code)
	}

	shared := suite.ds.ByNumber(100)
	var codes []string
	for _, rec := range shared {
		codes = append(codes, rec.Code)
	}
	suite.Equal([]string{"BGJ", "BGK", "BGL"}, codes)
}

func (suite *TableBuilderTestSuite) TestRecordInvariants() {
	for _, rec := range suite.ds.Records() {
		suite.Len(rec.Code, 3)
		suite.True(slices.IsSorted(rec.Entities), rec.Code)
		suite.Len(slices.Compact(slices.Clone(rec.Entities)), len(rec.Entities), rec.Code)
		suite.True(slices.IsSortedFunc(rec.WithdrawalHistory, func(a, b domain.Historic) int {
			return a.Period.Compare(b.Period)
		}), rec.Code)
		if !rec.IsActive() {
			suite.NotEmpty(rec.WithdrawalHistory, rec.Code)
			suite.Nil(rec.SubunitExponent, rec.Code)
		}
		for _, h := range rec.WithdrawalHistory {
			again, err := domain.ParseApproxTimeSpan(h.Period.String())
			suite.Require().NoError(err)
			suite.Equal(h.Period, again, rec.Code)
			suite.Equal(strings.TrimSpace(h.Entity), h.Entity)
		}
	}
}

func (suite *TableBuilderTestSuite) TestIdempotent() {
	again, err := services.BuildDataset(context.Background(), isoxml.DefaultSources())
	suite.Require().NoError(err)
	suite.Equal(suite.ds, again)
	suite.NotSame(suite.ds, again)
}

func TestTableBuilderTestSuite(t *testing.T) {
	suite.Run(t, new(TableBuilderTestSuite))
}

func TestBuildDataset_PublishedFromHistoricList(t *testing.T) {
	src := isoxml.Sources{
		Active: []byte(`<ISO_4217 Pblshd="2018-08-29"><CcyTbl>
			<CcyNtry><CtryNm>UKRAINE</CtryNm><CcyNm>Hryvnia</CcyNm><Ccy>UAH</Ccy><CcyNbr>980</CcyNbr><CcyMnrUnts>2</CcyMnrUnts></CcyNtry>
		</CcyTbl></ISO_4217>`),
		Historic: []byte(`<ISO_4217 Pblshd="2018-09-01"><HstrcCcyTbl>
			<HstrcCcyNtry><CtryNm>UKRAINE</CtryNm><CcyNm>Karbovanet</CcyNm><Ccy>UAK</Ccy><CcyNbr>804</CcyNbr><WthdrwlDt>1996-09</WthdrwlDt></HstrcCcyNtry>
		</HstrcCcyTbl></ISO_4217>`),
	}

	ds, err := services.BuildDataset(context.Background(), src)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2018, 9, 1, 0, 0, 0, 0, time.UTC), ds.Published())
	assert.Equal(t, 2, ds.Len())
	assert.Equal(t, 1, ds.ActiveCount())
}

func TestBuildDataset_ParseErrorAbortsBuild(t *testing.T) {
	src := isoxml.DefaultSources()
	src.Historic = []byte(`<ISO_4217 Pblshd="2024-01-01"><HstrcCcyTbl>
		<HstrcCcyNtry><CtryNm>A</CtryNm><CcyNm>X</CcyNm><Ccy>AAA</Ccy><WthdrwlDt>soon</WthdrwlDt></HstrcCcyNtry>
	</HstrcCcyTbl></ISO_4217>`)

	ds, err := services.BuildDataset(context.Background(), src)
	assert.Nil(t, ds)
	assert.ErrorIs(t, err, apperrors.ErrParse)
	assert.Contains(t, err.Error(), "list-three")
}
