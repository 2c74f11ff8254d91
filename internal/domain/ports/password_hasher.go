package ports

// PasswordHasher isola o algoritmo de hash de senhas do domínio
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
}
