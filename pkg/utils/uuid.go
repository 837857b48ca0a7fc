package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const (
	characters          = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	transactionIDLength = 12
)

// GenerateTransactionID gera um identificador para linhas importadas sem Transaction ID
func GenerateTransactionID() (string, error) {
	return gonanoid.Generate(characters, transactionIDLength)
}
