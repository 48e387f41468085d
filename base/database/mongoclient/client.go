package mongoclient

import (
	"context"
	"crypto/tls"
	"errors"
	"runtime"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readconcern"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"

	"github.com/x-xyz/goauction/base/log"
)

const (
	mgSocketTimeout  = 60 * time.Second
	mgConnectTimeout = 10 * time.Second
)

// ErrNoTransactions is returned when the deployment is a standalone server.
// Ledger transfers and settlements run in multi-document transactions, which
// need a replica set or a sharded cluster.
var ErrNoTransactions = errors.New("mongo deployment does not support transactions")

// Client wraps mongo.Client
type Client struct {
	DbName string
	*mongo.Client
}

// MustConnectMongoClient returns MongoDB connection client if connected successfully, or it will trigger panic
func MustConnectMongoClient(uri, authDBName, dbName string, ssl, setSafe bool, poolSizeMultiplier float64) *Client {
	cli, err := ConnectMongoClient(uri, authDBName, dbName, ssl, setSafe, poolSizeMultiplier)
	if err != nil {
		log.Log().WithFields(log.Fields{"mongoURI": uri, "err": err}).Panic("fail to dial Mongo")
	}
	return cli
}

// ConnectMongoClient dials the deployment and checks it can run transactions
func ConnectMongoClient(uri, authDBName, dbName string, ssl, setSafe bool, poolSizeMultiplier float64) (*Client, error) {
	connSetting, err := connstring.Parse(uri)
	if err != nil {
		log.Log().WithFields(log.Fields{
			"dbName": dbName,
			"err":    err,
		}).Error("fail to parse connstring")
		return nil, err
	}
	logger := log.Log().WithFields(log.Fields{
		"mongoHosts": connSetting.Hosts,
		"dbName":     dbName,
	})

	clientOpts := options.Client().
		ApplyURI(uri).
		SetSocketTimeout(mgSocketTimeout).
		SetConnectTimeout(mgConnectTimeout).
		SetRetryWrites(true).
		SetReadConcern(readconcern.Majority())

	if connSetting.Username != "" && connSetting.AuthSource == "" {
		clientOpts.SetAuth(options.Credential{
			AuthMechanism:           connSetting.AuthMechanism,
			AuthMechanismProperties: connSetting.AuthMechanismProperties,
			Username:                connSetting.Username,
			Password:                connSetting.Password,
			PasswordSet:             connSetting.PasswordSet,
			AuthSource:              authDBName,
		})
	}

	// the pool size is per host
	poolSize := poolSizePerHost(runtime.NumCPU(), poolSizeMultiplier, len(connSetting.Hosts))
	clientOpts.SetMinPoolSize(uint64(poolSize / 4))
	clientOpts.SetMaxPoolSize(uint64(poolSize))
	logger.WithField("poolSize", poolSize).Info("mongo driver pool size")

	if ssl {
		clientOpts.SetTLSConfig(&tls.Config{})
	}
	if setSafe {
		clientOpts.SetWriteConcern(writeconcern.New(writeconcern.WMajority()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), mgConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		logger.WithField("err", err).Error("fail to connect mongo db")
		return nil, err
	}

	if err := checkTransactions(ctx, client); err != nil {
		logger.WithField("err", err).Error("fail to check mongo topology")
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	logger.Info("mongo connected")
	return &Client{
		Client: client,
		DbName: dbName,
	}, nil
}

func poolSizePerHost(cpus int, multiplier float64, hosts int) int {
	if hosts <= 0 {
		hosts = 1
	}
	total := int(float64(cpus) * multiplier)
	size := (total + hosts - 1) / hosts
	if size < 1 {
		size = 1
	}
	return size
}

func checkTransactions(ctx context.Context, client *mongo.Client) error {
	res := struct {
		SetName string `bson:"setName"`
		Msg     string `bson:"msg"`
	}{}
	if err := client.Database("admin").RunCommand(ctx, bson.D{{Key: "isMaster", Value: 1}}).Decode(&res); err != nil {
		return err
	}
	// mongos answers with msg "isdbgrid"
	if res.SetName == "" && res.Msg != "isdbgrid" {
		return ErrNoTransactions
	}
	return nil
}
