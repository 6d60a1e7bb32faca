// Package worker 執行不影響 HTTP 回應的背景任務，例如寄送歡迎通知
package worker

import (
	"log"
	"sync"
)

// Task 是交給 pool 執行的工作
type Task func()

type Pool interface {
	Submit(Task)
	Stop()
}

// 每個 worker 可排隊的任務數
const queuePerWorker = 64

// NewPool 建立 n 個 worker；n<=0 時使用 1
func NewPool(n int) Pool {
	if n <= 0 {
		n = 1
	}
	return newPool(n, n*queuePerWorker)
}

func newPool(n, queue int) *pool {
	p := &pool{jobs: make(chan Task, queue)}
	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go p.loop()
	}
	return p
}

type pool struct {
	jobs    chan Task
	wg      sync.WaitGroup
	mu      sync.RWMutex
	stopped bool
}

func (p *pool) loop() {
	defer p.wg.Done()
	for job := range p.jobs {
		run(job)
	}
}

// run 隔離單一任務的 panic，避免整個 worker 結束
func run(job Task) {
	if job == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			log.Printf("背景任務 panic: %v", r)
		}
	}()
	job()
}

// Submit 不會阻塞；Stop 之後或佇列已滿時直接丟棄任務
func (p *pool) Submit(t Task) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.stopped {
		log.Printf("worker pool 已停止，丟棄任務")
		return
	}
	select {
	case p.jobs <- t:
	default:
		log.Printf("worker pool 佇列已滿，丟棄任務")
	}
}

// Stop 等待已送出的任務完成；可重複呼叫
func (p *pool) Stop() {
	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		return
	}
	p.stopped = true
	close(p.jobs)
	p.mu.Unlock()
	p.wg.Wait()
}
