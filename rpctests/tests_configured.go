package rpctests

import (
	"fmt"

	"github.com/rdkcentral/rpc-contract-tests/catalog"
	"github.com/rdkcentral/rpc-contract-tests/config"
)

// CasesFromConfig resolves configured cases against the catalog.
func CasesFromConfig(configs []config.CaseConfig) ([]Case, error) {
	ret := make([]Case, 0, len(configs))
	for _, cc := range configs {
		req, err := catalog.Lookup(cc.Service, cc.Operation)
		if err != nil {
			return nil, fmt.Errorf("case %s: %w", cc.ID, err)
		}
		description := cc.Description
		if description == "" {
			description = fmt.Sprintf("Calls %s.", req.Method)
		}
		ret = append(ret, Case{
			ID:          cc.ID,
			Description: description,
			Request:     req,
			Expected:    cc.Expected,
			PassMessage: cc.PassMessage,
		})
	}
	return ret, nil
}
