package usecase

import (
	"sort"
	"sync"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/domain/auction"
	"github.com/x-xyz/goauction/domain/bank"
	"github.com/x-xyz/goauction/domain/event"
	"github.com/x-xyz/goauction/domain/nft"
)

// in-memory stores, values are copied in and out like a database would

type fakeTx struct{}

func (fakeTx) RunWithTransaction(c ctx.Ctx, run func(ctx.Ctx) error) error {
	return run(c)
}

type emitted struct {
	Contract domain.Address
	Name     string
	Args     event.Args
}

type fakeEmitter struct {
	events []emitted
}

func (e *fakeEmitter) Emit(c ctx.Ctx, contract domain.Address, name string, args event.Args) error {
	e.events = append(e.events, emitted{Contract: contract, Name: name, Args: args})
	return nil
}

func (e *fakeEmitter) names() []string {
	res := []string{}
	for _, ev := range e.events {
		res = append(res, ev.Name)
	}
	return res
}

func (e *fakeEmitter) last(name string) *emitted {
	for i := len(e.events) - 1; i >= 0; i-- {
		if e.events[i].Name == name {
			return &e.events[i]
		}
	}
	return nil
}

type fakeEngineRepo struct {
	mu     sync.Mutex
	data   map[domain.Address]auction.Engine
	nonces map[domain.Address]uint64
}

func (r *fakeEngineRepo) FindOne(c ctx.Ctx, address domain.Address) (*auction.Engine, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.data[address.ToLower()]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &e, nil
}

func (r *fakeEngineRepo) Insert(c ctx.Ctx, e *auction.Engine) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.data[e.Address.ToLower()]; ok {
		return domain.ErrConflict
	}
	r.data[e.Address.ToLower()] = *e
	return nil
}

func (r *fakeEngineRepo) Upsert(c ctx.Ctx, e *auction.Engine) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[e.Address.ToLower()] = *e
	return nil
}

func (r *fakeEngineRepo) NextNonce(c ctx.Ctx, deployer domain.Address) (uint64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.nonces == nil {
		r.nonces = map[domain.Address]uint64{}
	}
	n := r.nonces[deployer.ToLower()]
	r.nonces[deployer.ToLower()] = n + 1
	return n, nil
}

type fakeAuctionRepo struct {
	data map[auction.Id]auction.Auction
}

func (r *fakeAuctionRepo) FindOne(c ctx.Ctx, id auction.Id) (*auction.Auction, error) {
	a, ok := r.data[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &a, nil
}

func (r *fakeAuctionRepo) FindAll(c ctx.Ctx, opts ...auction.FindAllOptionsFunc) ([]*auction.Auction, error) {
	o, err := auction.GetFindAllOptions(opts...)
	if err != nil {
		return nil, err
	}
	res := []*auction.Auction{}
	for _, a := range r.data {
		a := a
		if o.Seller != nil && !a.Seller.Equals(*o.Seller) {
			continue
		}
		if o.State != nil && a.State != *o.State {
			continue
		}
		res = append(res, &a)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].AuctionId < res[j].AuctionId })
	return res, nil
}

func (r *fakeAuctionRepo) Insert(c ctx.Ctx, a *auction.Auction) error {
	if _, ok := r.data[a.ToId()]; ok {
		return domain.ErrConflict
	}
	r.data[a.ToId()] = *a
	return nil
}

func (r *fakeAuctionRepo) Upsert(c ctx.Ctx, a *auction.Auction) error {
	r.data[a.ToId()] = *a
	return nil
}

type fakeBidRepo struct {
	data map[auction.BidId]auction.Bid
}

func (r *fakeBidRepo) FindOne(c ctx.Ctx, id auction.BidId) (*auction.Bid, error) {
	b, ok := r.data[auction.BidId{Engine: id.Engine, AuctionId: id.AuctionId, Bidder: id.Bidder.ToLower()}]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &b, nil
}

func (r *fakeBidRepo) FindAll(c ctx.Ctx, id auction.Id) ([]*auction.Bid, error) {
	res := []*auction.Bid{}
	for k, b := range r.data {
		b := b
		if k.Engine == id.Engine && k.AuctionId == id.AuctionId {
			res = append(res, &b)
		}
	}
	return res, nil
}

func (r *fakeBidRepo) Upsert(c ctx.Ctx, b *auction.Bid) error {
	r.data[auction.BidId{Engine: b.Engine, AuctionId: b.AuctionId, Bidder: b.Bidder}] = *b
	return nil
}

type fakePendingReturnRepo struct {
	data map[auction.PendingReturnId]auction.PendingReturn
}

func (r *fakePendingReturnRepo) FindOne(c ctx.Ctx, id auction.PendingReturnId) (*auction.PendingReturn, error) {
	p, ok := r.data[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &p, nil
}

func (r *fakePendingReturnRepo) FindAll(c ctx.Ctx, offset, limit int) ([]*auction.PendingReturn, error) {
	res := []*auction.PendingReturn{}
	for _, p := range r.data {
		p := p
		res = append(res, &p)
	}
	sort.Slice(res, func(i, j int) bool {
		if !res[i].CreatedAt.Equal(res[j].CreatedAt) {
			return res[i].CreatedAt.Before(res[j].CreatedAt)
		}
		return res[i].Beneficiary < res[j].Beneficiary
	})
	if offset > len(res) {
		offset = len(res)
	}
	res = res[offset:]
	if limit > 0 && limit < len(res) {
		res = res[:limit]
	}
	return res, nil
}

func (r *fakePendingReturnRepo) Upsert(c ctx.Ctx, p *auction.PendingReturn) error {
	r.data[p.ToId()] = *p
	return nil
}

func (r *fakePendingReturnRepo) Remove(c ctx.Ctx, id auction.PendingReturnId) error {
	if _, ok := r.data[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.data, id)
	return nil
}

type fakeBalanceRepo struct {
	data map[bank.BalanceId]bank.Balance
}

func (r *fakeBalanceRepo) FindOne(c ctx.Ctx, id bank.BalanceId) (*bank.Balance, error) {
	b, ok := r.data[bank.BalanceId{Token: id.Token.ToLower(), Account: id.Account.ToLower()}]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &b, nil
}

func (r *fakeBalanceRepo) Upsert(c ctx.Ctx, b *bank.Balance) error {
	r.data[bank.BalanceId{Token: b.Token.ToLower(), Account: b.Account.ToLower()}] = *b
	return nil
}

type fakeAccountRepo struct {
	data map[domain.Address]bank.Account
}

func (r *fakeAccountRepo) FindOne(c ctx.Ctx, address domain.Address) (*bank.Account, error) {
	a, ok := r.data[address.ToLower()]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &a, nil
}

func (r *fakeAccountRepo) Upsert(c ctx.Ctx, a *bank.Account) error {
	r.data[a.Address.ToLower()] = *a
	return nil
}

type fakeHoldingRepo struct {
	data map[nft.Id]nft.Holding
}

func (r *fakeHoldingRepo) FindOne(c ctx.Ctx, id nft.Id) (*nft.Holding, error) {
	h, ok := r.data[nft.Id{Contract: id.Contract.ToLower(), TokenId: id.TokenId}]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &h, nil
}

func (r *fakeHoldingRepo) Insert(c ctx.Ctx, h *nft.Holding) error {
	id := nft.Id{Contract: h.Contract.ToLower(), TokenId: h.TokenId}
	if _, ok := r.data[id]; ok {
		return domain.ErrConflict
	}
	r.data[id] = *h
	return nil
}

func (r *fakeHoldingRepo) Upsert(c ctx.Ctx, h *nft.Holding) error {
	r.data[nft.Id{Contract: h.Contract.ToLower(), TokenId: h.TokenId}] = *h
	return nil
}

type fakeOperatorRepo struct {
	data map[nft.OperatorId]nft.Operator
}

func (r *fakeOperatorRepo) FindOne(c ctx.Ctx, id nft.OperatorId) (*nft.Operator, error) {
	o, ok := r.data[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &o, nil
}

func (r *fakeOperatorRepo) Upsert(c ctx.Ctx, o *nft.Operator) error {
	r.data[nft.OperatorId{Contract: o.Contract, Owner: o.Owner, Operator: o.Operator}] = *o
	return nil
}

// fakeVerifier accepts every contract but the listed ones
type fakeVerifier struct {
	rejected map[domain.Address]bool
}

func (v *fakeVerifier) IsERC721(c ctx.Ctx, contract domain.Address) (bool, error) {
	return !v.rejected[contract.ToLower()], nil
}
