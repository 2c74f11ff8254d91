package entities

// UserProfile é a visão de leitura de um usuário com os nomes dos
// responsáveis pela criação e última alteração já resolvidos.
type UserProfile struct {
	User
	CreatedByUsername string
	UpdatedByUsername string
}
