// internal/scan/scanner.go
package scan

import (
	"github.com/sirupsen/logrus"
)

// Report is the finalized result of one scan. Rows holds every record from
// successful lookups, in completion order; Failures counts the lookups that
// produced no rows (no data, NXDOMAIN, or an error).
type Report struct {
	Rows     []Record
	Failures int
}

// Scanner fans out one lookup per record type and gathers the outcomes.
type Scanner struct {
	resolver    Resolver
	recordTypes []string
	log         *logrus.Logger
}

// NewScanner creates a new Scanner. The record-type list is queried exactly
// as given, one concurrent lookup per entry.
func NewScanner(resolver Resolver, recordTypes []string, log *logrus.Logger) *Scanner {
	return &Scanner{
		resolver:    resolver,
		recordTypes: recordTypes,
		log:         log,
	}
}

// Scan runs one lookup per configured record type concurrently and blocks
// until all of them have finished. Per-type failures are logged and excluded
// from the report; they never abort the other in-flight lookups, so Scan
// itself cannot fail.
func (s *Scanner) Scan(domain string) *Report {
	s.log.Infof("Starting DNS scan for domain: %s", domain)
	report := &Report{}
	if len(s.recordTypes) == 0 {
		s.log.Infof("DNS scan for %s completed (no record types configured)", domain)
		return report
	}

	outcomes := make(chan Outcome, len(s.recordTypes))
	for _, rt := range s.recordTypes {
		go func(rt string) {
			outcomes <- s.resolver.Resolve(domain, rt)
		}(rt)
	}

	// Single collector: every outcome funnels through here, so the report
	// is never touched by more than one goroutine.
	for i := 0; i < len(s.recordTypes); i++ {
		out := <-outcomes
		switch out.Status {
		case StatusSuccess:
			report.Rows = append(report.Rows, out.Records...)
			values := make([]string, 0, len(out.Records))
			for _, rec := range out.Records {
				values = append(values, rec.Value)
			}
			s.log.Infof("%s records for %s: %v", out.Type, out.Domain, values)
		case StatusNoData:
			report.Failures++
			s.log.Warnf("No %s records found for %s", out.Type, out.Domain)
		case StatusDomainNotFound:
			report.Failures++
			s.log.Errorf("Domain %s does not exist", out.Domain)
		default:
			report.Failures++
			s.log.Errorf("Error resolving %s records for %s: %v", out.Type, out.Domain, out.Err)
		}
	}

	s.log.Infof("DNS scan for %s completed", domain)
	return report
}
