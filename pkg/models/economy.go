package models

// EconomyAccount representa o saldo de moedas de um usuário na
// coleção "economia". A chave primária é o ID do usuário.
type EconomyAccount struct {
	UserID    string `bson:"_id" json:"userId"`
	Balance   int64  `bson:"saldo" json:"saldo"`
	LastDaily int64  `bson:"ultimoDaily,omitempty" json:"ultimoDaily,omitempty"`
}
