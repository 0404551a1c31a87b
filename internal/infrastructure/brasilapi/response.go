package brasilapi

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/jhoicas/rpa-cotacao/internal/domain/entity"
)

// flexString campo que BrasilAPI devuelve a veces como string y a veces como
// número (cep, situacao_cadastral). Se preserva el texto crudo.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = flexString(n.String())
	return nil
}

// companyResponse payload de /api/cnpj/v1/{cnpj}. Solo los campos que el
// informe consume.
type companyResponse struct {
	CNPJ               flexString `json:"cnpj"`
	LegalName          string     `json:"razao_social"`
	TradeName          string     `json:"nome_fantasia"`
	RegistrationStatus flexString `json:"situacao_cadastral"`
	Street             string     `json:"logradouro"`
	Number             string     `json:"numero"`
	Municipality       string     `json:"municipio"`
	PostalCode         flexString `json:"cep"`
	BranchDescription  string     `json:"descricao_identificador_matriz_filial"`
	Phone              string     `json:"ddd_telefone_1"`
	Email              string     `json:"email"`
}

// ToDomain proyección al registro de dominio. El CEP vuelve a 8 dígitos si
// Excel o la API le comieron los ceros a la izquierda.
func (r *companyResponse) ToDomain() *entity.Company {
	cep := strings.TrimSpace(string(r.PostalCode))
	if n := len(cep); n > 0 && n < 8 {
		cep = strings.Repeat("0", 8-n) + cep
	}
	return &entity.Company{
		CNPJ:               entity.NormalizeCNPJ(string(r.CNPJ)),
		LegalName:          r.LegalName,
		TradeName:          r.TradeName,
		RegistrationStatus: string(r.RegistrationStatus),
		Street:             r.Street,
		Number:             r.Number,
		Municipality:       r.Municipality,
		PostalCode:         cep,
		BranchDescription:  r.BranchDescription,
		Phone:              r.Phone,
		Email:              r.Email,
	}
}
