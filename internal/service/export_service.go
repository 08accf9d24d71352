package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"eduhub_backend/internal/model"
	"eduhub_backend/internal/repository"
	"eduhub_backend/pkg/logger"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ExportService dumps every collection to a single JSON document and
// hands it to the configured storage provider.
type ExportService struct {
	DB      *mongo.Database
	Storage *StorageService
}

func NewExportService(db *mongo.Database, storage *StorageService) *ExportService {
	return &ExportService{DB: db, Storage: storage}
}

// ExportAll reads all collections, normalizes driver types into plain
// JSON values and saves the result as eduhub_export_<timestamp>.json.
// It returns the destination path and per-collection document counts.
func (s *ExportService) ExportAll(ctx context.Context) (string, map[string]int, error) {
	export := make(map[string]interface{}, len(model.Collections)+1)
	counts := make(map[string]int, len(model.Collections))

	for _, name := range model.Collections {
		docs, err := s.readCollection(ctx, name)
		if err != nil {
			return "", nil, fmt.Errorf("export %s: %w", name, err)
		}
		export[name] = docs
		counts[name] = len(docs)
	}
	export["exportedAt"] = time.Now().UTC().Format(time.RFC3339)

	data, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return "", nil, err
	}

	filename := fmt.Sprintf("eduhub_export_%s.json", time.Now().Format("20060102_150405"))
	dst, err := s.Storage.Provider.Save(ctx, filename, data, "application/json")
	if err != nil {
		return "", nil, err
	}

	fields := make([]zapcore.Field, 0, len(counts)+1)
	fields = append(fields, zap.String("file", dst))
	for name, n := range counts {
		fields = append(fields, zap.Int(name, n))
	}
	logger.Log.Info("database export complete", fields...)
	return dst, counts, nil
}

func (s *ExportService) readCollection(ctx context.Context, name string) ([]interface{}, error) {
	cur, err := s.DB.Collection(name).Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	docs := make([]interface{}, 0)
	for cur.Next(ctx) {
		var doc bson.M
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		docs = append(docs, normalizeValue(doc))
	}
	return docs, cur.Err()
}

// normalizeValue rewrites driver-specific values into JSON-friendly
// ones: ObjectIDs become hex strings and dates become RFC 3339 strings.
func normalizeValue(v interface{}) interface{} {
	switch t := v.(type) {
	case primitive.ObjectID:
		return t.Hex()
	case primitive.DateTime:
		return t.Time().UTC().Format(time.RFC3339)
	case time.Time:
		return t.UTC().Format(time.RFC3339)
	case bson.M:
		out := make(map[string]interface{}, len(t))
		for k, val := range t {
			out[k] = normalizeValue(val)
		}
		return out
	case bson.D:
		out := make(map[string]interface{}, len(t))
		for _, e := range t {
			out[e.Key] = normalizeValue(e.Value)
		}
		return out
	case bson.A:
		out := make([]interface{}, len(t))
		for i, val := range t {
			out[i] = normalizeValue(val)
		}
		return out
	default:
		return v
	}
}

// DatabaseInfo gathers collection names and collStats summaries.
func (s *ExportService) DatabaseInfo(ctx context.Context) (*model.DatabaseInfo, error) {
	info := &model.DatabaseInfo{
		DatabaseName: s.DB.Name(),
		Collections:  model.Collections,
		Stats:        make(map[string]model.CollectionInfo, len(model.Collections)),
	}
	for _, name := range model.Collections {
		stats, err := repository.CollStats(ctx, s.DB, name)
		if err != nil {
			return nil, err
		}
		info.Stats[name] = model.CollectionInfo{
			Count:      asInt64(stats["count"]),
			Size:       asInt64(stats["size"]),
			AvgObjSize: asInt64(stats["avgObjSize"]),
			Indexes:    int32(asInt64(stats["nindexes"])),
		}
	}
	return info, nil
}

func asInt64(v interface{}) int64 {
	switch t := v.(type) {
	case int32:
		return int64(t)
	case int64:
		return t
	case float64:
		return int64(t)
	default:
		return 0
	}
}
