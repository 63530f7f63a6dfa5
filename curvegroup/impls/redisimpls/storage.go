package redisimpls

import (
	"context"
	"encoding/json"
	"sort"

	"github.com/go-redis/redis/v8"
	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libmarketdata/curvegroup"
)

// NewRedisStorage keeps each group in a hash, one field per curve, and the group names
// in a set.
func NewRedisStorage(preKey string, redisCli *redis.Client, logger l.Wrapper) curvegroup.Storage {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	logger = logger.WithFields(l.StringField(l.ClsKey, "curveGroupRedisStorage"))

	if redisCli == nil {
		logger.Fatal("no redis client")
	}

	return &redisStorageImpl{
		logger:   logger,
		preKey:   preKey,
		redisCli: redisCli,
	}
}

type redisStorageImpl struct {
	logger   l.Wrapper
	preKey   string
	redisCli *redis.Client
}

func (impl *redisStorageImpl) groupsKey() string {
	return impl.preKey + ":curve-groups"
}

func (impl *redisStorageImpl) groupKey(name curvegroup.GroupName) string {
	return impl.preKey + ":curve-group:" + string(name)
}

func (impl *redisStorageImpl) Save(ctx context.Context, def *curvegroup.Definition) error {
	if def == nil {
		return commerr.ErrInvalidArgument
	}

	fields := make(map[string]interface{})

	for _, entry := range def.Entries() {
		d, err := json.Marshal(entry.Config())
		if err != nil {
			return err
		}

		fields[string(entry.CurveName())] = d
	}

	_, err := impl.redisCli.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, impl.groupKey(def.Name()))

		if len(fields) > 0 {
			pipe.HSet(ctx, impl.groupKey(def.Name()), fields)
		}

		pipe.SAdd(ctx, impl.groupsKey(), string(def.Name()))

		return nil
	})
	if err != nil {
		impl.logger.WithFields(l.StringField("group", string(def.Name())), l.ErrorField(err)).Error("save curve group failed")
	}

	return err
}

func (impl *redisStorageImpl) Load(ctx context.Context, name curvegroup.GroupName) (*curvegroup.Definition, error) {
	exists, err := impl.redisCli.SIsMember(ctx, impl.groupsKey(), string(name)).Result()
	if err != nil {
		return nil, err
	}

	if !exists {
		return nil, commerr.ErrNotFound
	}

	fields, err := impl.redisCli.HGetAll(ctx, impl.groupKey(name)).Result()
	if err != nil {
		return nil, err
	}

	cfg := curvegroup.DefinitionConfig{
		Name:   name,
		Curves: make([]curvegroup.EntryConfig, 0, len(fields)),
	}

	for curveName, d := range fields {
		var entryCfg curvegroup.EntryConfig

		if err = json.Unmarshal([]byte(d), &entryCfg); err != nil {
			impl.logger.WithFields(l.StringField("group", string(name)), l.StringField("curve", curveName),
				l.ErrorField(err)).Error("bad curve group entry")

			return nil, err
		}

		cfg.Curves = append(cfg.Curves, entryCfg)
	}

	return curvegroup.NewDefinitionFromConfig(cfg)
}

func (impl *redisStorageImpl) List(ctx context.Context) ([]curvegroup.GroupName, error) {
	members, err := impl.redisCli.SMembers(ctx, impl.groupsKey()).Result()
	if err != nil {
		return nil, err
	}

	sort.Strings(members)

	names := make([]curvegroup.GroupName, len(members))
	for idx, member := range members {
		names[idx] = curvegroup.GroupName(member)
	}

	return names, nil
}

func (impl *redisStorageImpl) Delete(ctx context.Context, name curvegroup.GroupName) error {
	var removed *redis.IntCmd

	_, err := impl.redisCli.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		removed = pipe.SRem(ctx, impl.groupsKey(), string(name))
		pipe.Del(ctx, impl.groupKey(name))

		return nil
	})
	if err != nil {
		return err
	}

	if removed.Val() == 0 {
		return commerr.ErrNotFound
	}

	return nil
}
