package repository

import (
	"context"

	"rebobinagem/internal/domain/entities"
	"rebobinagem/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

type clientRecord struct {
	ID        string `dynamodbav:"id"`
	Name      string `dynamodbav:"name"`
	Address   string `dynamodbav:"address,omitempty"`
	Phone     string `dynamodbav:"phone,omitempty"`
	Mobile    string `dynamodbav:"mobile,omitempty"`
	Notes     string `dynamodbav:"notes,omitempty"`
	CreatedAt string `dynamodbav:"created_at"`
}

type partRecord struct {
	ID        string `dynamodbav:"id"`
	Name      string `dynamodbav:"name"`
	Type      string `dynamodbav:"type,omitempty"`
	Price     string `dynamodbav:"price"`
	Unit      string `dynamodbav:"unit,omitempty"`
	Notes     string `dynamodbav:"notes,omitempty"`
	CreatedAt string `dynamodbav:"created_at"`
}

// ClientDynamoRepository persists clients (PK: id). The registry is small enough to be
// listed with a scan; searching happens in the use case.
type ClientDynamoRepository struct {
	t table
}

var _ interfaces.IClientRepository = (*ClientDynamoRepository)(nil)

func NewClientDynamoRepository(ddb *dynamodb.Client, tableName string) *ClientDynamoRepository {
	return &ClientDynamoRepository{t: table{ddb: ddb, name: tableName}}
}

func (r *ClientDynamoRepository) Create(ctx context.Context, c entities.Client) (entities.Client, error) {
	if err := r.t.create(ctx, toClientRecord(c)); err != nil {
		return entities.Client{}, err
	}
	return c, nil
}

func (r *ClientDynamoRepository) GetByID(ctx context.Context, id string) (entities.Client, error) {
	var rec clientRecord
	found, err := r.t.get(ctx, id, &rec)
	if err != nil || !found {
		return entities.Client{}, err
	}
	return fromClientRecord(rec), nil
}

func (r *ClientDynamoRepository) List(ctx context.Context) ([]entities.Client, error) {
	records, err := scanAll[clientRecord](ctx, r.t.ddb, &dynamodb.ScanInput{TableName: aws.String(r.t.name)})
	if err != nil {
		return nil, err
	}
	out := make([]entities.Client, 0, len(records))
	for _, rec := range records {
		out = append(out, fromClientRecord(rec))
	}
	return out, nil
}

func (r *ClientDynamoRepository) Update(ctx context.Context, c entities.Client) (entities.Client, error) {
	ok, err := r.t.replace(ctx, toClientRecord(c))
	if err != nil || !ok {
		return entities.Client{}, err
	}
	return c, nil
}

func (r *ClientDynamoRepository) Delete(ctx context.Context, id string) error {
	return r.t.delete(ctx, id)
}

// PartDynamoRepository persists the parts catalog (PK: id).
type PartDynamoRepository struct {
	t table
}

var _ interfaces.IPartRepository = (*PartDynamoRepository)(nil)

func NewPartDynamoRepository(ddb *dynamodb.Client, tableName string) *PartDynamoRepository {
	return &PartDynamoRepository{t: table{ddb: ddb, name: tableName}}
}

func (r *PartDynamoRepository) Create(ctx context.Context, p entities.Part) (entities.Part, error) {
	if err := r.t.create(ctx, toPartRecord(p)); err != nil {
		return entities.Part{}, err
	}
	return p, nil
}

func (r *PartDynamoRepository) GetByID(ctx context.Context, id string) (entities.Part, error) {
	var rec partRecord
	found, err := r.t.get(ctx, id, &rec)
	if err != nil || !found {
		return entities.Part{}, err
	}
	return fromPartRecord(rec), nil
}

func (r *PartDynamoRepository) List(ctx context.Context) ([]entities.Part, error) {
	records, err := scanAll[partRecord](ctx, r.t.ddb, &dynamodb.ScanInput{TableName: aws.String(r.t.name)})
	if err != nil {
		return nil, err
	}
	out := make([]entities.Part, 0, len(records))
	for _, rec := range records {
		out = append(out, fromPartRecord(rec))
	}
	return out, nil
}

func (r *PartDynamoRepository) Update(ctx context.Context, p entities.Part) (entities.Part, error) {
	ok, err := r.t.replace(ctx, toPartRecord(p))
	if err != nil || !ok {
		return entities.Part{}, err
	}
	return p, nil
}

func (r *PartDynamoRepository) Delete(ctx context.Context, id string) error {
	return r.t.delete(ctx, id)
}

func toClientRecord(c entities.Client) clientRecord {
	return clientRecord{
		ID:        c.ID,
		Name:      c.Name,
		Address:   c.Address,
		Phone:     c.Phone,
		Mobile:    c.Mobile,
		Notes:     c.Notes,
		CreatedAt: formatTime(c.CreatedAt),
	}
}

func fromClientRecord(rec clientRecord) entities.Client {
	return entities.Client{
		ID:        rec.ID,
		Name:      rec.Name,
		Address:   rec.Address,
		Phone:     rec.Phone,
		Mobile:    rec.Mobile,
		Notes:     rec.Notes,
		CreatedAt: parseTime(rec.CreatedAt),
	}
}

func toPartRecord(p entities.Part) partRecord {
	return partRecord{
		ID:        p.ID,
		Name:      p.Name,
		Type:      p.Type,
		Price:     formatDecimal(p.Price),
		Unit:      p.Unit,
		Notes:     p.Notes,
		CreatedAt: formatTime(p.CreatedAt),
	}
}

func fromPartRecord(rec partRecord) entities.Part {
	return entities.Part{
		ID:        rec.ID,
		Name:      rec.Name,
		Type:      rec.Type,
		Price:     parseDecimal(rec.Price),
		Unit:      rec.Unit,
		Notes:     rec.Notes,
		CreatedAt: parseTime(rec.CreatedAt),
	}
}
