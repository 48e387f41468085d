package query

import (
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.mongodb.org/mongo-driver/x/mongo/driver/topology"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/database/mongoclient"
	"github.com/x-xyz/goauction/base/log"
	"github.com/x-xyz/goauction/base/metrics"
	"github.com/x-xyz/goauction/domain"
)

const (
	queryMaxTime   = 20 * time.Second
	slowThreshold  = 500 * time.Millisecond
	concurrentTxns = 10
)

var (
	timeNow = time.Now
	met     = metrics.New("mongo")
)

type impl struct {
	client     *mongoclient.Client
	checkIndex bool
	// bounds the sessions held by concurrent transactions
	txnSlots chan struct{}
}

// New initializes an impl. With checkIndex every read is explained first and
// rejected with ErrCollScan when it would scan the whole collection.
func New(client *mongoclient.Client, checkIndex bool) Mongo {
	return &impl{
		client:     client,
		checkIndex: checkIndex,
		txnSlots:   make(chan struct{}, concurrentTxns),
	}
}

func (im *impl) getClient(context ctx.Ctx) *mongoclient.Client {
	return im.client
}

func (im *impl) coll(context ctx.Ctx, table domain.Table) *mongo.Collection {
	client := im.getClient(context)
	return client.Database(client.DbName).Collection(string(table))
}

// begin tags context with the operation and returns the func that closes it
// out. A slow operation is logged with its filter and sort.
func (im *impl) begin(context ctx.Ctx, table domain.Table, op string, filter interface{}, sort []string) (ctx.Ctx, func()) {
	start := timeNow()
	timer := met.BumpTime("time", "func", op, "table", string(table))
	context = ctx.WithValues(context, map[string]interface{}{
		"table": table,
		"op":    op,
	})
	return context, func() {
		timer.End()
		elapsed := timeNow().Sub(start)
		if elapsed < slowThreshold {
			return
		}
		met.BumpSum("slowlog", 1, "table", string(table), "action", op)
		context.WithFields(log.Fields{
			"startTime":  start.Unix(),
			"durationMs": elapsed.Milliseconds(),
			"filter":     filter,
			"sort":       sort,
		}).Warn("mongo slowlog")
	}
}

// fail maps driver errors onto the package errors. Anything unexpected is
// logged and returned as is, so a transaction can still spot transient ones.
func (im *impl) fail(context ctx.Ctx, msg string, err error) error {
	switch {
	case err == mongo.ErrNoDocuments:
		return ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return ErrDuplicateKey
	case err == ErrCollScan:
		return err
	}
	if _, ok := err.(topology.ConnectionError); ok {
		met.BumpSum("conn.err", 1)
	}
	context.WithField("err", err).Error(msg)
	return err
}

func (im *impl) Insert(context ctx.Ctx, table domain.Table, insert interface{}) error {
	context, done := im.begin(context, table, "insert", nil, nil)
	defer done()

	if _, err := im.coll(context, table).InsertOne(context, insert); err != nil {
		return im.fail(context, "InsertOne failed", err)
	}
	return nil
}

func (im *impl) FindOne(context ctx.Ctx, table domain.Table, query, result interface{}) error {
	context, done := im.begin(context, table, "findone", query, nil)
	defer done()

	if err := im.checkQueryIndex(context, table, "find", bson.E{Key: "filter", Value: query}); err != nil {
		return im.fail(context, "checkQueryIndex failed", err)
	}

	res := im.coll(context, table).FindOne(context, query, options.FindOne().SetMaxTime(queryMaxTime))
	if err := res.Decode(result); err != nil {
		return im.fail(context, "FindOne failed", err)
	}
	return nil
}

func (im *impl) Count(context ctx.Ctx, table domain.Table, selector interface{}) (int, error) {
	context, done := im.begin(context, table, "count", selector, nil)
	defer done()

	if err := im.checkQueryIndex(context, table, "count", bson.E{Key: "query", Value: selector}); err != nil {
		return 0, im.fail(context, "checkQueryIndex failed", err)
	}

	n, err := im.coll(context, table).CountDocuments(context, selector, options.Count().SetMaxTime(queryMaxTime))
	if err != nil {
		return 0, im.fail(context, "CountDocuments failed", err)
	}
	return int(n), nil
}

func (im *impl) Upsert(context ctx.Ctx, table domain.Table, selector, update interface{}) error {
	context, done := im.begin(context, table, "upsert", selector, nil)
	defer done()

	if _, err := im.coll(context, table).ReplaceOne(context, selector, update, options.Replace().SetUpsert(true)); err != nil {
		return im.fail(context, "ReplaceOne failed", err)
	}
	return nil
}

// sortKeys turns "field" / "-field" strings into an ordered sort document
func sortKeys(fields ...string) bson.D {
	res := bson.D{}
	for _, f := range fields {
		switch {
		case f == "":
		case f[0] == '-':
			res = append(res, bson.E{Key: f[1:], Value: -1})
		default:
			res = append(res, bson.E{Key: f, Value: 1})
		}
	}
	return res
}

func (im *impl) Search(context ctx.Ctx, table domain.Table, offset, limit int, sort string, query, results interface{}) error {
	return im.SearchNSorts(context, table, offset, limit, []string{sort}, query, results)
}

func (im *impl) SearchNSorts(context ctx.Ctx, table domain.Table, offset, limit int, sortFields []string, query, results interface{}) error {
	context, done := im.begin(context, table, "search", query, sortFields)
	defer done()

	if err := im.checkQueryIndex(context, table, "find", bson.E{Key: "filter", Value: query}); err != nil {
		return im.fail(context, "checkQueryIndex failed", err)
	}

	opts := options.Find().SetMaxTime(queryMaxTime).SetSkip(int64(offset)).SetLimit(int64(limit))
	if sort := sortKeys(sortFields...); len(sort) > 0 {
		opts.SetSort(sort)
	}
	cursor, err := im.coll(context, table).Find(context, query, opts)
	if err != nil {
		return im.fail(context, "Find failed", err)
	}
	defer cursor.Close(context)

	if err := cursor.All(context, results); err != nil {
		return im.fail(context, "cursor.All failed", err)
	}
	return nil
}

func (im *impl) Increment(context ctx.Ctx, table domain.Table, selector interface{}, field string) (int64, error) {
	context, done := im.begin(context, table, "increment", selector, nil)
	defer done()

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After).
		SetMaxTime(queryMaxTime)
	res := im.coll(context, table).FindOneAndUpdate(context, selector, bson.M{"$inc": bson.M{field: int64(1)}}, opts)
	doc := bson.M{}
	if err := res.Decode(&doc); err != nil {
		return 0, im.fail(context, "FindOneAndUpdate failed", err)
	}
	switch v := doc[field].(type) {
	case int64:
		return v, nil
	case int32:
		return int64(v), nil
	}
	return 0, fmt.Errorf("%s.%s is not an integer", table, field)
}

func (im *impl) Remove(context ctx.Ctx, table domain.Table, selector interface{}) error {
	context, done := im.begin(context, table, "remove", selector, nil)
	defer done()

	res, err := im.coll(context, table).DeleteOne(context, selector)
	if err != nil {
		return im.fail(context, "DeleteOne failed", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (im *impl) RunWithTransaction(context ctx.Ctx, run func(ctx.Ctx) error) error {
	// nested calls join the enclosing transaction
	if mongo.SessionFromContext(context) != nil {
		return run(context)
	}

	// explain is not allowed inside a transaction
	if im.checkIndex {
		return run(context)
	}

	select {
	case <-context.Done():
		return context.Err()
	case im.txnSlots <- struct{}{}:
	}
	defer func() { <-im.txnSlots }()

	session, err := im.getClient(context).StartSession()
	if err != nil {
		return im.fail(context, "StartSession failed", err)
	}
	defer session.EndSession(context)

	attempts := 0
	_, err = session.WithTransaction(context, func(sessCtx mongo.SessionContext) (interface{}, error) {
		attempts++
		return nil, run(ctx.Wrap(context, sessCtx))
	})
	if attempts > 1 {
		met.BumpSum("txn.retry", float64(attempts-1))
	}
	return err
}

func (im *impl) EnsureIndexes(context ctx.Ctx, table domain.Table, indexes ...Index) error {
	context, done := im.begin(context, table, "ensureIndexes", nil, nil)
	defer done()

	client := im.getClient(context)
	db := client.Database(client.DbName)

	names, err := db.ListCollectionNames(context, bson.M{"name": string(table)})
	if err != nil {
		return im.fail(context, "ListCollectionNames failed", err)
	}
	if len(names) == 0 {
		if err := db.RunCommand(context, bson.D{{Key: "create", Value: string(table)}}).Err(); err != nil {
			return im.fail(context, "create collection failed", err)
		}
	}
	if len(indexes) == 0 {
		return nil
	}

	models := make([]mongo.IndexModel, len(indexes))
	for i, idx := range indexes {
		models[i] = mongo.IndexModel{
			Keys:    sortKeys(idx.Keys...),
			Options: options.Index().SetUnique(idx.Unique),
		}
	}
	if _, err := db.Collection(string(table)).Indexes().CreateMany(context, models); err != nil {
		return im.fail(context, "CreateMany failed", err)
	}
	return nil
}

func (im *impl) Ping(context ctx.Ctx) error {
	if err := im.getClient(context).Ping(context, readpref.Primary()); err != nil {
		return im.fail(context, "Ping failed", err)
	}
	return nil
}

// checkQueryIndex explains the query and fails on a collection scan.
// https://docs.mongodb.com/manual/reference/command/explain/
func (im *impl) checkQueryIndex(context ctx.Ctx, table domain.Table, action string, query bson.E) error {
	if !im.checkIndex {
		return nil
	}
	client := im.getClient(context)
	res := client.Database(client.DbName).RunCommand(context, bson.D{
		{Key: "explain", Value: bson.D{{Key: action, Value: string(table)}, query}},
		{Key: "verbosity", Value: "queryPlanner"},
	})

	var plan bson.M
	if err := res.Decode(&plan); err != nil {
		context.WithField("err", err).Warn("explain decode failed")
		met.BumpSum("checkQueryIndex.err", 1)
		return nil
	}

	// the plan layout differs between server versions, so look for the stage
	// name anywhere in it
	if strings.Contains(fmt.Sprintf("%v", plan), "COLLSCAN") {
		context.WithField("query", query).Warn("COLLSCAN")
		return ErrCollScan
	}
	return nil
}
