package models

// MenuItem is a priced entry shown on menu screens. Wire and document field
// names keep the Portuguese form the display frontends consume.
type MenuItem struct {
	ID          string  `bson:"_id" json:"id"`
	Name        string  `bson:"nome" json:"nome"`
	Description string  `bson:"descricao" json:"descricao"`
	Price       float64 `bson:"preco" json:"preco"`
	Image       string  `bson:"imagem" json:"imagem"`
}
