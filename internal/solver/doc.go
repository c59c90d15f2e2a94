// Package solver содержит итерационные методы поиска корня скалярной функции
// (Ньютона, секущих, деления пополам) и общую модель результата с историей итераций.
//
// Методы не возвращают ошибок: любая неудача (ошибка вычисления функции,
// нулевая производная, отрезок без смены знака, исчерпание итераций)
// описывается неуспешным Result с непустым Message.
package solver
