package moverecord

import (
	"time"

	"github.com/HuXin0817/pipopipette/pkg/models/message"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type GameStartRecode struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UpdateAt time.Time          `bson:"updateAt,omitempty" json:"updateAt,omitempty"`
	CreateAt time.Time          `bson:"createAt,omitempty" json:"createAt,omitempty"`

	GameUid message.GameUid
	Rows    int
	Cols    int
	Red     string
	Blue    string
}
