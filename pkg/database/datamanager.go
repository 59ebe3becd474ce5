// Package database fornece o DataManager para operações com cache.
package database

import (
	"container/list"
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/ignislabs/ignis-go/pkg/logger"
	"github.com/ignislabs/ignis-go/pkg/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DataManagerOptions contains configuration for a DataManager
type DataManagerOptions struct {
	MaxCacheSize int
}

// CacheManager provides shared caching across DataManagers
type CacheManager struct {
	cache     map[string]*list.Element
	cacheList *list.List
	mu        sync.RWMutex
}

// cacheEntry holds a cached value with its key
type cacheEntry struct {
	key   string
	value interface{}
}

// globalCacheManager is shared across all DataManager instances
var globalCacheManager = &CacheManager{
	cache:     make(map[string]*list.Element),
	cacheList: list.New(),
}

// DataManagers globais para as coleções do bot
var (
	GlobalProgressDM *DataManager[models.UserProgress]
	GlobalHistoryDM  *DataManager[models.LevelUpHistory]
	GlobalEconomyDM  *DataManager[models.EconomyAccount]
	GlobalReminderDM *DataManager[models.Reminder]
	GlobalConfigDM   *DataManager[models.LevelRolesConfig]
)

// InitGlobalDataManagers initializes shared DataManager instances
func InitGlobalDataManagers(db *Database) {
	GlobalProgressDM = NewDataManager[models.UserProgress]("niveis", db)
	GlobalHistoryDM = NewDataManager[models.LevelUpHistory]("historico_niveis", db)
	GlobalEconomyDM = NewDataManager[models.EconomyAccount]("economia", db)
	GlobalReminderDM = NewDataManager[models.Reminder]("lembretes", db)
	GlobalConfigDM = NewDataManager[models.LevelRolesConfig]("configuracao", db)
}

// DataManager provides cached access to a MongoDB collection
type DataManager[T any] struct {
	collection *mongo.Collection
	dbInstance *Database
	options    DataManagerOptions
}

// DefaultDataManagerOptions returns default options for DataManager
func DefaultDataManagerOptions() DataManagerOptions {
	return DataManagerOptions{
		MaxCacheSize: 1000,
	}
}

// NewDataManager creates a new DataManager for a collection
func NewDataManager[T any](collectionName string, db *Database, opts ...DataManagerOptions) *DataManager[T] {
	dmOptions := DefaultDataManagerOptions()
	if len(opts) > 0 {
		dmOptions = opts[0]
	}

	return &DataManager[T]{
		collection: db.GetCollection(collectionName),
		dbInstance: db,
		options:    dmOptions,
	}
}

// generateCacheKey creates a unique, deterministic key from a query.
// Keys are sorted so the result is stable across map iteration order.
func (dm *DataManager[T]) generateCacheKey(query bson.M) string {
	collName := ""
	if dm.collection != nil {
		collName = dm.collection.Name()
	}

	keys := make([]string, 0, len(query))
	for k := range query {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var parts []string
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, query[k]))
	}

	return fmt.Sprintf("%s:{%s}", collName, strings.Join(parts, ","))
}

// cachePut stores a value under the key, evicting the oldest entry if
// the cache is over capacity. Caller must not hold the cache lock.
func (dm *DataManager[T]) cachePut(cacheKey string, value *T) {
	globalCacheManager.mu.Lock()
	defer globalCacheManager.mu.Unlock()

	entry := &cacheEntry{key: cacheKey, value: value}

	if elem, exists := globalCacheManager.cache[cacheKey]; exists {
		elem.Value = entry
		globalCacheManager.cacheList.MoveToFront(elem)
		return
	}

	elem := globalCacheManager.cacheList.PushFront(entry)
	globalCacheManager.cache[cacheKey] = elem

	if dm.options.MaxCacheSize > 0 && globalCacheManager.cacheList.Len() > dm.options.MaxCacheSize {
		oldest := globalCacheManager.cacheList.Back()
		if oldest != nil {
			oldEntry := oldest.Value.(*cacheEntry)
			delete(globalCacheManager.cache, oldEntry.key)
			globalCacheManager.cacheList.Remove(oldest)
		}
	}
}

// cacheEvict removes a key from the cache
func (dm *DataManager[T]) cacheEvict(cacheKey string) {
	globalCacheManager.mu.Lock()
	defer globalCacheManager.mu.Unlock()
	if elem, exists := globalCacheManager.cache[cacheKey]; exists {
		globalCacheManager.cacheList.Remove(elem)
		delete(globalCacheManager.cache, cacheKey)
	}
}

// Get retrieves a document from cache or database
func (dm *DataManager[T]) Get(query bson.M) (*T, error) {
	cacheKey := dm.generateCacheKey(query)

	globalCacheManager.mu.RLock()
	if elem, exists := globalCacheManager.cache[cacheKey]; exists {
		globalCacheManager.mu.RUnlock()
		globalCacheManager.mu.Lock()
		globalCacheManager.cacheList.MoveToFront(elem)
		entry := elem.Value.(*cacheEntry)
		globalCacheManager.mu.Unlock()
		return entry.value.(*T), nil
	}
	globalCacheManager.mu.RUnlock()

	if !dm.dbInstance.Connected() || dm.collection == nil {
		return nil, fmt.Errorf("banco de dados não conectado")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var result T
	err := dm.collection.FindOne(ctx, query).Decode(&result)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		logger.Warn(fmt.Sprintf("Falha ao ler do banco (%s)", dm.collection.Name()), "DataManager")
		return nil, err
	}

	dm.cachePut(cacheKey, &result)
	return &result, nil
}

// GetAll retrieves all documents matching a query from the database
func (dm *DataManager[T]) GetAll(query bson.M) ([]*T, error) {
	return dm.GetAllWithOptions(query, nil)
}

// GetAllWithOptions retrieves matching documents with find options
// (sort, limit) applied. Used by the leaderboard queries.
func (dm *DataManager[T]) GetAllWithOptions(query bson.M, findOpts *options.FindOptions) ([]*T, error) {
	if !dm.dbInstance.Connected() || dm.collection == nil {
		return nil, fmt.Errorf("banco de dados não conectado")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var cursor *mongo.Cursor
	var err error
	if findOpts != nil {
		cursor, err = dm.collection.Find(ctx, query, findOpts)
	} else {
		cursor, err = dm.collection.Find(ctx, query)
	}
	if err != nil {
		return nil, err
	}
	defer func() { _ = cursor.Close(ctx) }()

	var results []*T
	for cursor.Next(ctx) {
		var doc T
		if err := cursor.Decode(&doc); err != nil {
			continue
		}
		results = append(results, &doc)
	}

	return results, cursor.Err()
}

// Set updates or inserts a document in the database and cache
func (dm *DataManager[T]) Set(query bson.M, data interface{}) (*T, error) {
	cacheKey := dm.generateCacheKey(query)

	if !dm.dbInstance.Connected() || dm.collection == nil {
		logger.Warn(fmt.Sprintf("Banco offline. Enfileirando escrita para '%s'", dm.collectionName()), "DataManager")
		dm.dbInstance.AddToWriteQueue(QueuedOperation{
			CollectionName: dm.collectionName(),
			Query:          query,
			Operation:      "set",
			Data:           data,
		})
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var result T
	err := dm.collection.FindOneAndUpdate(ctx, query, bson.M{"$set": data}, opts).Decode(&result)
	if err != nil {
		logger.Error("Erro em 'set' com o banco conectado. Enfileirando por segurança.", "DataManager")
		dm.dbInstance.AddToWriteQueue(QueuedOperation{
			CollectionName: dm.collectionName(),
			Query:          query,
			Operation:      "set",
			Data:           data,
		})
		return nil, err
	}

	dm.cachePut(cacheKey, &result)
	return &result, nil
}

// UpdateOne aplica um update arbitrário ($set condicional, $inc) de
// forma atômica no servidor. Retorna quantos documentos casaram com o
// filtro; um retorno 0 indica que a condição do filtro falhou.
func (dm *DataManager[T]) UpdateOne(filter bson.M, update bson.M) (int64, error) {
	if !dm.dbInstance.Connected() || dm.collection == nil {
		return 0, fmt.Errorf("banco de dados não conectado")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := dm.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return 0, err
	}

	// O filtro pode ser mais estreito que a chave do documento, então
	// o cache correspondente à chave primária é apenas invalidado.
	if id, ok := filter["_id"]; ok {
		dm.cacheEvict(dm.generateCacheKey(bson.M{"_id": id}))
	}

	return res.MatchedCount, nil
}

// FindOneAndUpdate aplica um update atômico e devolve o documento
// resultante, com upsert opcional. Atualiza o cache com o resultado.
func (dm *DataManager[T]) FindOneAndUpdate(filter bson.M, update bson.M, upsert bool) (*T, error) {
	if !dm.dbInstance.Connected() || dm.collection == nil {
		return nil, fmt.Errorf("banco de dados não conectado")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	opts := options.FindOneAndUpdate().
		SetUpsert(upsert).
		SetReturnDocument(options.After)

	var result T
	err := dm.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&result)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	if id, ok := filter["_id"]; ok {
		dm.cachePut(dm.generateCacheKey(bson.M{"_id": id}), &result)
	}

	return &result, nil
}

// InsertOne insere um documento novo (registros append-only, como o
// histórico de níveis). Não passa pelo cache.
func (dm *DataManager[T]) InsertOne(data interface{}) error {
	if !dm.dbInstance.Connected() || dm.collection == nil {
		return fmt.Errorf("banco de dados não conectado")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := dm.collection.InsertOne(ctx, data)
	return err
}

// Delete removes a document from the database and cache
func (dm *DataManager[T]) Delete(query bson.M) error {
	cacheKey := dm.generateCacheKey(query)
	dm.cacheEvict(cacheKey)

	if !dm.dbInstance.Connected() || dm.collection == nil {
		logger.Warn(fmt.Sprintf("Banco offline. Enfileirando exclusão para '%s'", dm.collectionName()), "DataManager")
		dm.dbInstance.AddToWriteQueue(QueuedOperation{
			CollectionName: dm.collectionName(),
			Query:          query,
			Operation:      "delete",
		})
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := dm.collection.DeleteOne(ctx, query)
	if err != nil {
		logger.Error("Erro em 'delete' com o banco conectado. Enfileirando por segurança.", "DataManager")
		dm.dbInstance.AddToWriteQueue(QueuedOperation{
			CollectionName: dm.collectionName(),
			Query:          query,
			Operation:      "delete",
		})
		return err
	}

	return nil
}

// collectionName returns the collection name, tolerating a nil handle
func (dm *DataManager[T]) collectionName() string {
	if dm.collection == nil {
		return "?"
	}
	return dm.collection.Name()
}

// ClearCache clears the entire shared cache
func (dm *DataManager[T]) ClearCache() {
	globalCacheManager.mu.Lock()
	defer globalCacheManager.mu.Unlock()

	globalCacheManager.cache = make(map[string]*list.Element)
	globalCacheManager.cacheList = list.New()
}

// CacheSize returns the current cache size
func (dm *DataManager[T]) CacheSize() int {
	globalCacheManager.mu.RLock()
	defer globalCacheManager.mu.RUnlock()
	return globalCacheManager.cacheList.Len()
}
