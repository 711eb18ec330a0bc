package domain

import "time"

// MessageModel is the GORM model for the messages table.
type MessageModel struct {
	ID             int64     `gorm:"primaryKey;autoIncrement"`
	Nickname       string    `gorm:"type:varchar(100);not null"`
	Text           string    `gorm:"type:text;not null"`
	CreatedAt      time.Time `gorm:"index;not null"`
	Sentiment      string    `gorm:"type:varchar(50)"`
	SentimentScore float64
}

// TableName specifies the table name for MessageModel.
func (MessageModel) TableName() string {
	return "messages"
}

// ToDomain converts MessageModel to domain Message.
func (m *MessageModel) ToDomain() *Message {
	return &Message{
		ID:             m.ID,
		Nickname:       m.Nickname,
		Text:           m.Text,
		CreatedAt:      m.CreatedAt,
		Sentiment:      m.Sentiment,
		SentimentScore: m.SentimentScore,
	}
}

// MessageToModel converts domain Message to MessageModel.
func MessageToModel(m *Message) *MessageModel {
	return &MessageModel{
		ID:             m.ID,
		Nickname:       m.Nickname,
		Text:           m.Text,
		CreatedAt:      m.CreatedAt,
		Sentiment:      m.Sentiment,
		SentimentScore: m.SentimentScore,
	}
}

// UserModel is the GORM model for the users table.
type UserModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Username  string    `gorm:"type:varchar(50);uniqueIndex;not null"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for UserModel.
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts UserModel to domain User.
func (m *UserModel) ToDomain() *User {
	return &User{
		ID:        m.ID,
		Username:  m.Username,
		CreatedAt: m.CreatedAt,
	}
}

// UserToModel converts domain User to UserModel.
func UserToModel(u *User) *UserModel {
	return &UserModel{
		ID:        u.ID,
		Username:  u.Username,
		CreatedAt: u.CreatedAt,
	}
}
