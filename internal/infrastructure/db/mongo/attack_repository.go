package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/darksignal/darksignal/internal/core/domain"
)

const attackCollection = "attacks"

// AttackRepository reads the attack catalogue. Entries are seeded externally
// and keyed by a small numeric id referenced in page URLs.
type AttackRepository struct {
	coll *mongo.Collection
}

func NewAttackRepository(db *mongo.Database) *AttackRepository {
	return &AttackRepository{coll: db.Collection(attackCollection)}
}

type mongoAttack struct {
	ID          int    `bson:"id"`
	Name        string `bson:"name"`
	Description string `bson:"description"`
	ImgURL      string `bson:"img_url"`
}

func (r *AttackRepository) GetAll(ctx context.Context) ([]domain.Attack, error) {
	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"id": 1}))
	if err != nil {
		return nil, fmt.Errorf("find attacks: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []mongoAttack
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode attacks: %w", err)
	}

	attacks := make([]domain.Attack, 0, len(docs))
	for _, d := range docs {
		attacks = append(attacks, toDomainAttack(d))
	}
	return attacks, nil
}

func (r *AttackRepository) GetByID(ctx context.Context, id int) (*domain.Attack, error) {
	var doc mongoAttack
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrAttackNotFound
		}
		return nil, fmt.Errorf("find attack: %w", err)
	}
	attack := toDomainAttack(doc)
	return &attack, nil
}

func toDomainAttack(d mongoAttack) domain.Attack {
	return domain.Attack{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		ImgURL:      d.ImgURL,
	}
}
