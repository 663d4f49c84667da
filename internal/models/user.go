package models

type User struct {
	ID          int64  `db:"id" json:"_id"`
	DisplayName string `db:"display_name" json:"display_name"`
}
