package handlers

// Client-facing messages.
const (
	msgInvalidID   = "ID inválido"
	msgInvalidBody = "Corpo do pedido inválido"
	msgEmptyBody   = "Corpo do pedido em falta"
	msgInvalidDate = "Data inválida"

	msgUserNotFound      = "Utilizador não encontrado"
	msgUserDeleted       = "Utilizador eliminado com sucesso"
	msgUserRegistered    = "Utilizador registado com sucesso!"
	msgEmailTaken        = "Email já registado"
	msgWrongPassword     = "Senha inválida"
	msgLoggedOut         = "Sessão terminada com sucesso"
	msgSenderNotFound    = "Utilizador remetente não encontrado"
	msgRecipientNotFound = "Utilizador destinatário não encontrado"

	msgMovieNotFound  = "Filme não encontrado"
	msgMovieUpdate    = "Filme não encontrado ou erro ao atualizar"
	msgMovieDeleted   = "Filme eliminado com sucesso"
	msgMovieCreate    = "Erro ao criar o filme: "
	msgSeriesNotFound = "Série não encontrada"
	msgSeriesUpdate   = "Série não encontrada ou erro ao atualizar"
	msgSeriesDeleted  = "Série eliminada com sucesso"
	msgSeriesCreate   = "Erro ao criar a série: "

	msgCategoryNotFound  = "Categoria não encontrada"
	msgCategoryDeleted   = "Categoria eliminada com sucesso"
	msgCategoryCreate    = "Erro ao criar a categoria: "
	msgCategoriesMissing = "Uma ou mais categorias fornecidas não existem."

	msgRatingNotFound       = "Classificação não encontrada"
	msgRatingNotFoundMovie  = "Classificação não encontrada para este filme"
	msgRatingNotFoundSeries = "Classificação não encontrada para esta série"
	msgRatingRemoved        = "Classificação removida com sucesso"

	msgNoteNotFound       = "Nota não encontrada"
	msgNoteUpdate         = "Nota não encontrada ou erro ao atualizar"
	msgNoteNotFoundMovie  = "Nota não encontrada para este filme"
	msgNoteNotFoundSeries = "Nota não encontrada para esta série"
	msgNoteNotFoundUser   = "Nota não encontrada para este utilizador"
	msgNoteRemoved        = "Nota removida com sucesso"

	msgCommentNotFound       = "Comentário não encontrado"
	msgCommentNotFoundMovie  = "Comentário não encontrado para este filme"
	msgCommentNotFoundSeries = "Comentário não encontrado para esta série"
	msgCommentNotFoundUser   = "Comentário não encontrado para este utilizador"
	msgCommentRemoved        = "Comentário removido com sucesso"

	msgEventNotFound     = "Evento não encontrado"
	msgEventNotFoundUser = "Evento não encontrado para este utilizador"
	msgEventRemoved      = "Evento removido com sucesso"

	msgShareNotFound = "Partilha não encontrada"
	msgShareRemoved  = "Partilha removida com sucesso"

	msgRootAlive = "A API de Gestão de Filmes e Séries está a funcionar!"
)
