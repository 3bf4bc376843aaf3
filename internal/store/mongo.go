// Package store accesses the MongoDB collections holding district
// reference data and monthly performance records.
package store

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Shubhk02/MGNREGA-Finding/pkg/model"
)

const (
	districtsCollection   = "districts"
	performanceCollection = "performance_data"

	connectTimeout = 10 * time.Second
)

// Store wraps the MongoDB client and database handles
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect establishes the MongoDB connection and verifies it with a ping
func Connect(ctx context.Context, mongoURL, dbName string) (*Store, error) {
	clientOptions := options.Client().
		ApplyURI(mongoURL).
		SetConnectTimeout(connectTimeout).
		SetServerSelectionTimeout(connectTimeout).
		SetRetryWrites(true).
		SetRetryReads(true)

	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("error connecting to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("error pinging MongoDB: %w", err)
	}

	logrus.Infof("Successfully connected to MongoDB database: %s", dbName)
	return &Store{client: client, db: client.Database(dbName)}, nil
}

// EnsureIndexes creates the unique indexes backing the natural keys:
// one district per code, one performance record per (district, month, year).
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.db.Collection(districtsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "district_code", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("district_code_idx"),
	})
	if err != nil {
		return fmt.Errorf("error creating district index: %w", err)
	}

	_, err = s.db.Collection(performanceCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "district_code", Value: 1},
			{Key: "month", Value: 1},
			{Key: "year", Value: 1},
		},
		Options: options.Index().SetUnique(true).SetName("district_month_year_idx"),
	})
	if err != nil {
		return fmt.Errorf("error creating performance index: %w", err)
	}
	return nil
}

// DistrictsByState returns all districts of a state sorted by name
func (s *Store) DistrictsByState(ctx context.Context, stateCode string) ([]model.District, error) {
	cursor, err := s.db.Collection(districtsCollection).Find(ctx,
		bson.M{"state_code": stateCode},
		options.Find().SetSort(bson.D{{Key: "district_name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("error querying districts: %w", err)
	}
	defer cursor.Close(ctx)

	var districts []model.District
	if err := cursor.All(ctx, &districts); err != nil {
		return nil, fmt.Errorf("error decoding districts: %w", err)
	}
	return districts, nil
}

// UpsertDistrict writes one district using insert-if-absent semantics for
// identity fields and overwrite semantics for display fields, so corrected
// names propagate without creating duplicate identities.
func (s *Store) UpsertDistrict(ctx context.Context, district model.District) error {
	update := bson.M{
		"$set": bson.M{
			"district_name":    district.DistrictName,
			"district_name_hi": district.DistrictNameHi,
			"state_name":       district.StateName,
			"state_name_hi":    district.StateNameHi,
		},
		"$setOnInsert": bson.M{
			"id":            district.ID,
			"district_code": district.DistrictCode,
			"state_code":    district.StateCode,
			"latitude":      district.Latitude,
			"longitude":     district.Longitude,
		},
	}

	_, err := s.db.Collection(districtsCollection).UpdateOne(ctx,
		bson.M{"district_code": district.DistrictCode},
		update,
		options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("error upserting district %s: %w", district.DistrictCode, err)
	}
	return nil
}

// FindPerformance looks up one record by its natural key. A missing record
// returns (nil, nil).
func (s *Store) FindPerformance(ctx context.Context, districtCode string, month, year int) (*model.PerformanceRecord, error) {
	var record model.PerformanceRecord
	err := s.db.Collection(performanceCollection).FindOne(ctx, bson.M{
		"district_code": districtCode,
		"month":         month,
		"year":          year,
	}).Decode(&record)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error querying performance data: %w", err)
	}
	return &record, nil
}

// SavePerformance inserts a record if no record exists for its natural key
// and returns whichever record now owns that key. Concurrent writers for
// the same missing month therefore converge on a single row.
func (s *Store) SavePerformance(ctx context.Context, record model.PerformanceRecord) (*model.PerformanceRecord, error) {
	filter := bson.M{
		"district_code": record.DistrictCode,
		"month":         record.Month,
		"year":          record.Year,
	}

	var stored model.PerformanceRecord
	err := s.db.Collection(performanceCollection).FindOneAndUpdate(ctx,
		filter,
		bson.M{"$setOnInsert": record},
		options.FindOneAndUpdate().
			SetUpsert(true).
			SetReturnDocument(options.After),
	).Decode(&stored)
	if err != nil {
		return nil, fmt.Errorf("error saving performance data: %w", err)
	}
	return &stored, nil
}

// Ping reports store reachability for health checks
func (s *Store) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return s.client.Ping(ctx, nil)
}

// Close disconnects from MongoDB
func (s *Store) Close(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	if err := s.client.Disconnect(ctx); err != nil {
		logrus.WithError(err).Error("Error closing MongoDB connection")
	}
}
