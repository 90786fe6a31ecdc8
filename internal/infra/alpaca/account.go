// Where: internal/infra/alpaca/account.go
// What: Textual form of an SDK account payload.
// Why: Print the account as returned, without interpreting its fields.
package alpaca

import (
	"fmt"

	"sigs.k8s.io/yaml"
)

// Account renders an opaque account payload as YAML using its JSON field names.
type Account struct {
	raw any
}

// NewAccount wraps any JSON-serializable payload.
func NewAccount(raw any) Account {
	return Account{raw: raw}
}

func (a Account) String() string {
	if a.raw == nil {
		return "<nil>"
	}
	payload, err := yaml.Marshal(a.raw)
	if err != nil {
		return fmt.Sprintf("%+v", a.raw)
	}
	return string(payload)
}
