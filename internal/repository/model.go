package repository

import (
	"encoding/json"
	"time"
)

// Persist-only records mirroring the legacy data file. Field names are part
// of the on-disk contract (the file predates this program) and must not
// change. Domain types never carry json tags; the mapping lives here.

// legacyTime reads both RFC 3339 timestamps and the naive ISO-8601 strings
// the original program wrote (no timezone offset, optional fractional
// seconds). Naive values are taken as UTC. It always writes RFC 3339.
type legacyTime struct {
	time.Time
}

var legacyTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
}

func (t *legacyTime) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	var err error
	for _, layout := range legacyTimeLayouts {
		var parsed time.Time
		if parsed, err = time.Parse(layout, raw); err == nil {
			t.Time = parsed
			return nil
		}
	}
	return err
}

// transactionRecord is one ledger entry. The sign of Valor encodes the
// direction: positive for deposits, negative for withdrawals.
type transactionRecord struct {
	Data  legacyTime `json:"data"`
	Valor float64    `json:"valor"`
}

// historyRecord wraps the transaction list under its legacy key.
type historyRecord struct {
	Transacoes []transactionRecord `json:"transacoes"`
}

// clientRecord is one persisted client.
type clientRecord struct {
	CPF            string `json:"cpf"`
	Nome           string `json:"nome"`
	DataNascimento string `json:"data_nascimento"`
	Endereco       string `json:"endereco"`
}

// accountRecord is one persisted account. The owner is recorded by cpf, not
// nested, so client data is never duplicated. Limite and LimiteSaques are
// absent for base accounts; their presence marks the checking variant.
type accountRecord struct {
	Limite       *float64      `json:"limite,omitempty"`
	LimiteSaques *int          `json:"limite_saques,omitempty"`
	CPF          string        `json:"cpf"`
	Agencia      string        `json:"agencia"`
	Historico    historyRecord `json:"historico"`
	Numero       int           `json:"numero"`
	Saldo        float64       `json:"saldo"`
}

// document is the whole data file.
type document struct {
	Usuarios []clientRecord  `json:"usuarios"`
	Contas   []accountRecord `json:"contas"`
}
