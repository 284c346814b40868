package dto

type CreateGameRequest struct {
	ID       int    `json:"id" validate:"required,gt=0"`
	GameType string `json:"game_type" validate:"required"`
	Name     string `json:"name" validate:"max=100"`
}
