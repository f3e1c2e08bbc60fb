package repository

import (
	"context"

	"rebobinagem/internal/domain/entities"
	"rebobinagem/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

type motorRecord struct {
	ID            string `dynamodbav:"id"`
	Type          string `dynamodbav:"type,omitempty"`
	Model         string `dynamodbav:"model,omitempty"`
	Brand         string `dynamodbav:"brand,omitempty"`
	CV            string `dynamodbav:"cv,omitempty"`
	Voltage       string `dynamodbav:"voltage,omitempty"`
	RPM           string `dynamodbav:"rpm,omitempty"`
	Turns         string `dynamodbav:"turns,omitempty"`
	Wires         string `dynamodbav:"wires,omitempty"`
	Connection    string `dynamodbav:"connection,omitempty"`
	OuterDiameter string `dynamodbav:"outer_diameter,omitempty"`
	OuterLength   string `dynamodbav:"outer_length,omitempty"`
	SerialNumber  string `dynamodbav:"serial_number,omitempty"`
	Original      bool   `dynamodbav:"original"`
	CreatedAt     string `dynamodbav:"created_at"`
}

// MotorDynamoRepository persists motors (PK: id).
type MotorDynamoRepository struct {
	t table
}

var _ interfaces.IMotorRepository = (*MotorDynamoRepository)(nil)

func NewMotorDynamoRepository(ddb *dynamodb.Client, tableName string) *MotorDynamoRepository {
	return &MotorDynamoRepository{t: table{ddb: ddb, name: tableName}}
}

func (r *MotorDynamoRepository) Create(ctx context.Context, m entities.Motor) (entities.Motor, error) {
	if err := r.t.create(ctx, toMotorRecord(m)); err != nil {
		return entities.Motor{}, err
	}
	return m, nil
}

func (r *MotorDynamoRepository) GetByID(ctx context.Context, id string) (entities.Motor, error) {
	var rec motorRecord
	found, err := r.t.get(ctx, id, &rec)
	if err != nil || !found {
		return entities.Motor{}, err
	}
	return fromMotorRecord(rec), nil
}

func (r *MotorDynamoRepository) Update(ctx context.Context, m entities.Motor) (entities.Motor, error) {
	ok, err := r.t.replace(ctx, toMotorRecord(m))
	if err != nil || !ok {
		return entities.Motor{}, err
	}
	return m, nil
}

func (r *MotorDynamoRepository) Delete(ctx context.Context, id string) error {
	return r.t.delete(ctx, id)
}

func toMotorRecord(m entities.Motor) motorRecord {
	return motorRecord{
		ID:            m.ID,
		Type:          m.Type,
		Model:         m.Model,
		Brand:         m.Brand,
		CV:            m.CV,
		Voltage:       m.Voltage,
		RPM:           m.RPM,
		Turns:         m.Turns,
		Wires:         m.Wires,
		Connection:    m.Connection,
		OuterDiameter: m.OuterDiameter,
		OuterLength:   m.OuterLength,
		SerialNumber:  m.SerialNumber,
		Original:      m.Original,
		CreatedAt:     formatTime(m.CreatedAt),
	}
}

func fromMotorRecord(rec motorRecord) entities.Motor {
	return entities.Motor{
		ID:            rec.ID,
		Type:          rec.Type,
		Model:         rec.Model,
		Brand:         rec.Brand,
		CV:            rec.CV,
		Voltage:       rec.Voltage,
		RPM:           rec.RPM,
		Turns:         rec.Turns,
		Wires:         rec.Wires,
		Connection:    rec.Connection,
		OuterDiameter: rec.OuterDiameter,
		OuterLength:   rec.OuterLength,
		SerialNumber:  rec.SerialNumber,
		Original:      rec.Original,
		CreatedAt:     parseTime(rec.CreatedAt),
	}
}
