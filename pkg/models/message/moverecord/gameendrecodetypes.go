package moverecord

import (
	"time"

	"github.com/HuXin0817/pipopipette/pkg/models/message"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type GameEndRecode struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UpdateAt time.Time          `bson:"updateAt,omitempty" json:"updateAt,omitempty"`
	CreateAt time.Time          `bson:"createAt,omitempty" json:"createAt,omitempty"`

	GameUid   message.GameUid
	Winner    string
	RedScore  int
	BlueScore int
	StepCount int
}
