package rrc

import (
	"context"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

type LeaseQuery struct {
	Name     string
	District string
	County   string
}

type LeaseRecord struct {
	LeaseNumber string   `json:"leaseNumber"`
	LeaseName   string   `json:"leaseName"`
	WellType    WellType `json:"wellType"`
	District    string   `json:"district"`
	WellNumber  string   `json:"wellNumber"`
	DisplayId   string   `json:"displayId"`
	DisplayName string   `json:"displayName"`
}

// hard bound against pathological result sets, the portal will
// happily render thousands of options for a one-letter search
const maxLeaseResults = 50

// SearchLeases submits a lease name search and extracts the matches
// the portal rendered. Result order is the portal's own relevance
// order and is preserved as-is.
func (c *Client) SearchLeases(ctx context.Context, session Session, query LeaseQuery) ([]LeaseRecord, error) {
	ctx, span := tracer.Start(ctx, "client:SearchLeases")
	defer span.End()

	form := url.Values{}
	form.Set("searchArgs.searchCriteriaArg", "contains")
	form.Set("searchArgs.searchValueArg", query.Name)
	form.Set("searchArgs.districtCodeArg", query.District)
	form.Set("searchArgs.countyCodeArg", query.County)
	form.Set("searchArgs.offshoreAreaArg", "")
	form.Set("searchArgs.fieldNoArg", "")

	body, err := c.SubmitForm(ctx, session, leaseQueryEndpoint, form)
	if err != nil {
		return nil, err
	}

	return ParseLeaseOptions(body), nil
}

// ParseLeaseOptions scans the markup for the portal's selectable
// search results: <option> elements whose value packs lease number,
// lease name, well type code, district and well number, labelled
// "(displayId):displayName". Anything that does not match the shape
// is skipped, absence of matches is an empty result, never an error.
func ParseLeaseOptions(markup string) []LeaseRecord {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil
	}

	var records []LeaseRecord
	doc.Find("option").EachWithBreak(func(_ int, opt *goquery.Selection) bool {
		record, ok := leaseFromOption(opt)
		if ok {
			records = append(records, record)
		}
		return len(records) < maxLeaseResults
	})
	return records
}

func leaseFromOption(opt *goquery.Selection) (LeaseRecord, bool) {
	parts := strings.Split(opt.AttrOr("value", ""), "|")
	if len(parts) < 5 {
		return LeaseRecord{}, false
	}

	wellType, err := ParseWellType(strings.TrimSpace(parts[2]))
	if err != nil {
		return LeaseRecord{}, false
	}

	displayId, displayName, ok := splitLeaseLabel(opt.Text())
	if !ok {
		return LeaseRecord{}, false
	}

	wellNumber := strings.TrimSpace(parts[4])
	// the portal renders a literal "null" for leases without a well number
	if wellNumber == "null" {
		wellNumber = ""
	}

	return LeaseRecord{
		LeaseNumber: strings.TrimSpace(parts[0]),
		LeaseName:   strings.TrimSpace(parts[1]),
		WellType:    wellType,
		District:    strings.TrimSpace(parts[3]),
		WellNumber:  wellNumber,
		DisplayId:   displayId,
		DisplayName: displayName,
	}, true
}

// splits a "(displayId):displayName" label
func splitLeaseLabel(label string) (string, string, bool) {
	label = strings.TrimSpace(label)
	if !strings.HasPrefix(label, "(") {
		return "", "", false
	}
	sep := strings.Index(label, "):")
	if sep < 0 {
		return "", "", false
	}
	return strings.TrimSpace(label[1:sep]), strings.TrimSpace(label[sep+2:]), true
}
