package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/issuetrack/reporting-system/internal/core/domain"
	"github.com/issuetrack/reporting-system/internal/core/ports"
)

// ReportRepository implements ports.ReportRepository on a MongoDB collection.
type ReportRepository struct {
	coll *mongo.Collection
}

func NewReportRepository(db *mongo.Database, collection string) *ReportRepository {
	return &ReportRepository{coll: db.Collection(collection)}
}

type mongoReport struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	EmployeeName string             `bson:"employee_name"`
	EmployeeCode string             `bson:"employee_code"`
	EmployeeType string             `bson:"employee_type"`
	Department   string             `bson:"department"`
	Description  string             `bson:"description"`
	ImageURL     string             `bson:"image_url"`
	Status       string             `bson:"status"`
	SubmittedAt  time.Time          `bson:"submitted_at"`
	SubmittedBy  string             `bson:"submitted_by"`
	Reply        string             `bson:"reply,omitempty"`
	RepliedAt    *time.Time         `bson:"replied_at,omitempty"`
}

func (r *ReportRepository) Create(ctx context.Context, report *domain.Report) (*domain.Report, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := toDoc(report)
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("%w: insert report: %v", domain.ErrUpstream, err)
	}

	created := *report
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *ReportRepository) ListBySubmitter(ctx context.Context, userID string) ([]domain.Report, error) {
	return r.list(ctx, bson.M{"submitted_by": userID})
}

func (r *ReportRepository) ListAll(ctx context.Context) ([]domain.Report, error) {
	return r.list(ctx, bson.M{})
}

func (r *ReportRepository) list(ctx context.Context, filter bson.M) ([]domain.Report, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "submitted_at", Value: -1}})
	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: list reports: %v", domain.ErrUpstream, err)
	}
	defer cur.Close(ctx)

	reports := []domain.Report{}
	for cur.Next(ctx) {
		var mr mongoReport
		if err := cur.Decode(&mr); err != nil {
			return nil, fmt.Errorf("%w: decode report: %v", domain.ErrUpstream, err)
		}
		reports = append(reports, fromDoc(&mr))
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("%w: list reports: %v", domain.ErrUpstream, err)
	}
	return reports, nil
}

func (r *ReportRepository) UpdateReply(ctx context.Context, id string, upd ports.ReplyUpdate) (*domain.Report, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrReportNotFound
	}

	update := bson.M{"$set": bson.M{
		"reply":      upd.Reply,
		"status":     string(upd.Status),
		"replied_at": upd.RepliedAt.UTC(),
	}}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var mr mongoReport
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&mr); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrReportNotFound
		}
		return nil, fmt.Errorf("%w: update report: %v", domain.ErrUpstream, err)
	}

	report := fromDoc(&mr)
	return &report, nil
}

// EnsureIndexes creates the indexes backing the two list queries.
func (r *ReportRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "submitted_by", Value: 1}, {Key: "submitted_at", Value: -1}}},
		{Keys: bson.D{{Key: "submitted_at", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}

func toDoc(r *domain.Report) mongoReport {
	return mongoReport{
		EmployeeName: r.EmployeeName,
		EmployeeCode: r.EmployeeCode,
		EmployeeType: string(r.EmployeeType),
		Department:   r.Department,
		Description:  r.Description,
		ImageURL:     r.ImageURL,
		Status:       string(r.Status),
		SubmittedAt:  r.SubmittedAt.UTC(),
		SubmittedBy:  r.SubmittedBy,
		Reply:        r.Reply,
		RepliedAt:    r.RepliedAt,
	}
}

func fromDoc(mr *mongoReport) domain.Report {
	return domain.Report{
		ID:           mr.ID.Hex(),
		EmployeeName: mr.EmployeeName,
		EmployeeCode: mr.EmployeeCode,
		EmployeeType: domain.EmployeeType(mr.EmployeeType),
		Department:   mr.Department,
		Description:  mr.Description,
		ImageURL:     mr.ImageURL,
		Status:       domain.ReportStatus(mr.Status),
		SubmittedAt:  mr.SubmittedAt,
		SubmittedBy:  mr.SubmittedBy,
		Reply:        mr.Reply,
		RepliedAt:    mr.RepliedAt,
	}
}
