// Package ofx parses OFX/QFX bank and card statements into raw
// statement entries for the normalization pipeline.
package ofx

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strings"

	"github.com/aclindsa/ofxgo"

	"github.com/granabr/descritor/internal/model"
)

// Parser implements OFX/QFX file parsing.
type Parser struct{}

// NewParser creates a new OFX parser.
func NewParser() *Parser {
	return &Parser{}
}

var (
	severityPattern = regexp.MustCompile(`(?i)<SEVERITY>(Info|Warn|Error)</SEVERITY>`)
	openTagPattern  = regexp.MustCompile(`(?m)^(\s*<[A-Z][A-Z0-9._]*[A-Z0-9])$`)
)

// preprocess fixes common formatting defects in statements exported by
// Brazilian banks: mixed-case SEVERITY values and SGML-style tags
// missing their closing bracket.
func (p *Parser) preprocess(content string) string {
	content = strings.TrimLeft(content, " \t\r\n")
	content = severityPattern.ReplaceAllStringFunc(content, strings.ToUpper)
	return openTagPattern.ReplaceAllString(content, "$1>")
}

// ParseFile parses an OFX/QFX statement and returns its entries.
func (p *Parser) ParseFile(_ context.Context, reader io.Reader) ([]model.StatementEntry, error) {
	content, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read OFX file: %w", err)
	}

	resp, err := ofxgo.ParseResponse(strings.NewReader(p.preprocess(string(content))))
	if err != nil {
		return nil, fmt.Errorf("failed to parse OFX file: %w", err)
	}

	var entries []model.StatementEntry

	for _, msg := range resp.Bank {
		stmt, ok := msg.(*ofxgo.StatementResponse)
		if !ok || stmt.BankTranList == nil {
			continue
		}
		accountID := string(stmt.BankAcctFrom.AcctID)
		for _, txn := range stmt.BankTranList.Transactions {
			entries = append(entries, convert(txn, accountID))
		}
	}

	for _, msg := range resp.CreditCard {
		stmt, ok := msg.(*ofxgo.CCStatementResponse)
		if !ok || stmt.BankTranList == nil {
			continue
		}
		accountID := string(stmt.CCAcctFrom.AcctID)
		for _, txn := range stmt.BankTranList.Transactions {
			entries = append(entries, convert(txn, accountID))
		}
	}

	slog.Info("Parsed OFX statement", "entries", len(entries))
	return entries, nil
}

// convert maps one OFX transaction onto a statement entry. The
// descriptor joins name and memo, which Brazilian banks split
// inconsistently.
func convert(txn ofxgo.Transaction, accountID string) model.StatementEntry {
	descriptor := strings.TrimSpace(string(txn.Name))
	if memo := strings.TrimSpace(string(txn.Memo)); memo != "" && memo != descriptor {
		if descriptor == "" {
			descriptor = memo
		} else {
			descriptor = descriptor + " " + memo
		}
	}

	// TrnAmt is a big.Rat; debits come through negative
	amount, _ := txn.TrnAmt.Float64()

	return model.StatementEntry{
		ID:         string(txn.FiTID),
		Date:       txn.DtPosted.Time,
		Descriptor: descriptor,
		AccountID:  accountID,
		Type:       fmt.Sprintf("%v", txn.TrnType),
		Amount:     amount,
	}
}
